package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playvault/internal/domain/entity"
	"playvault/pkg/errors"
)

func wishlistFixture(t *testing.T) (*WishlistUseCase, string) {
	t.Helper()

	contentRepo := newFakeContentRepo()
	content := &entity.Content{
		SellerID:   "seller-1",
		Title:      "Sprint drills",
		SaleType:   entity.SaleTypeFixed,
		Price:      25,
		Status:     entity.ContentStatusPublished,
		Visibility: entity.VisibilityPublic,
	}
	require.NoError(t, contentRepo.Create(context.Background(), content))

	return NewWishlistUseCase(newFakeWishlistRepo(), contentRepo), content.ID
}

func TestWishlistAddRemove(t *testing.T) {
	uc, contentID := wishlistFixture(t)
	ctx := context.Background()

	item, err := uc.AddItem(ctx, "buyer-1", contentID, "for next season")
	require.NoError(t, err)
	assert.Equal(t, contentID, item.ContentID)
	assert.Equal(t, "for next season", item.Notes)

	items, total, err := uc.ListItems(ctx, "buyer-1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)

	require.NoError(t, uc.RemoveItem(ctx, "buyer-1", contentID))

	_, total, err = uc.ListItems(ctx, "buyer-1", 20, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestWishlistRejectsDuplicatesAndOwnContent(t *testing.T) {
	uc, contentID := wishlistFixture(t)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "seller-1", contentID, "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.AddItem(ctx, "buyer-1", contentID, "")
	require.NoError(t, err)

	_, err = uc.AddItem(ctx, "buyer-1", contentID, "")
	assert.True(t, errors.Is(err, "CONFLICT"))

	_, err = uc.AddItem(ctx, "buyer-1", "missing-content", "")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	err = uc.RemoveItem(ctx, "buyer-2", contentID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
