package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/oss-curator/internal/domain"
)

// ListCollectionsInput contains the parameters for listing collections.
type ListCollectionsInput struct {
	ID string // Only this collection when set
}

// CollectionView is a collection with its member issues.
type CollectionView struct {
	Issues     []domain.Issue
	Collection domain.Collection
}

// ListCollectionsOutput contains the collections in catalog order.
type ListCollectionsOutput struct {
	Collections []CollectionView
}

// ListCollections is the use case for spotlight collections.
type ListCollections struct {
	catalog *domain.Catalog
	matcher domain.CollectionMatcher
}

// NewListCollections creates a new ListCollections use case.
func NewListCollections(catalog *domain.Catalog, matcher domain.CollectionMatcher) *ListCollections {
	return &ListCollections{catalog: catalog, matcher: matcher}
}

// Execute resolves collection members.
func (uc *ListCollections) Execute(_ context.Context, in ListCollectionsInput) (*ListCollectionsOutput, error) {
	out := &ListCollectionsOutput{}
	for _, col := range uc.catalog.Collections() {
		if in.ID != "" && col.ID != in.ID {
			continue
		}
		members, err := uc.matcher.Members(uc.catalog, col)
		if err != nil {
			return nil, err
		}
		out.Collections = append(out.Collections, CollectionView{Collection: col, Issues: members})
	}
	if in.ID != "" && len(out.Collections) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrCollectionNotFound, in.ID)
	}
	return out, nil
}
