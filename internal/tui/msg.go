package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgStateLoaded carries the stored explorer record read at startup.
type MsgStateLoaded struct {
	Err error
	Raw []byte
}

func (MsgStateLoaded) sealed() {}

// MsgLinkOpened is sent when an issue link was handed to the browser.
type MsgLinkOpened struct {
	URL string
}

func (MsgLinkOpened) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
