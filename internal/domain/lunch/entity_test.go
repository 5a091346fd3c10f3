//go:build unit

package lunch_test

import (
	"strings"
	"testing"

	"lunchbox/internal/domain/lunch"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLunch(t *testing.T) {
	userID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		l, err := lunch.NewLunch(userID, "Weekday lunches")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, userID, l.UserID())
		assert.Equal(t, "Weekday lunches", l.Name())
		assert.Equal(t, lunch.StatusActive, l.Status())
		assert.True(t, l.IsEmpty())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		l, err := lunch.NewLunch(userID, "  Friday treats  ")
		require.NoError(t, err)
		assert.Equal(t, "Friday treats", l.Name())
	})

	t.Run("empty name fails", func(t *testing.T) {
		_, err := lunch.NewLunch(userID, "   ")
		assert.ErrorIs(t, err, lunch.ErrEmptyName)
	})

	t.Run("name at maximum length is accepted", func(t *testing.T) {
		_, err := lunch.NewLunch(userID, strings.Repeat("a", lunch.MaxNameLength))
		assert.NoError(t, err)
	})

	t.Run("name over maximum length fails", func(t *testing.T) {
		_, err := lunch.NewLunch(userID, strings.Repeat("a", lunch.MaxNameLength+1))
		assert.ErrorIs(t, err, lunch.ErrNameTooLong)
	})
}

func TestLunchRename(t *testing.T) {
	l, err := lunch.NewLunch(uuid.New(), "Old name")
	require.NoError(t, err)

	t.Run("valid rename", func(t *testing.T) {
		require.NoError(t, l.Rename("New name"))
		assert.Equal(t, "New name", l.Name())
	})

	t.Run("invalid rename keeps the old name", func(t *testing.T) {
		assert.ErrorIs(t, l.Rename(""), lunch.ErrEmptyName)
		assert.Equal(t, "New name", l.Name())
	})
}

func TestLunchAddProduct(t *testing.T) {
	l, err := lunch.NewLunch(uuid.New(), "Lunch")
	require.NoError(t, err)

	productA := uuid.New()
	productB := uuid.New()

	t.Run("new product appends a line with quantity one", func(t *testing.T) {
		l.AddProduct(productA)

		items := l.Items()
		require.Len(t, items, 1)
		assert.Equal(t, productA, items[0].ProductID)
		assert.Equal(t, 1, items[0].Quantity)
		assert.NotEqual(t, uuid.Nil, items[0].ID)
	})

	t.Run("existing product increments its quantity", func(t *testing.T) {
		l.AddProduct(productA)

		items := l.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("different product gets its own line", func(t *testing.T) {
		l.AddProduct(productB)

		items := l.Items()
		require.Len(t, items, 2)
		assert.Equal(t, productB, items[1].ProductID)
		assert.Equal(t, 1, items[1].Quantity)
	})
}

func TestLunchSetItemQuantity(t *testing.T) {
	newLunchWithItem := func(t *testing.T) (*lunch.Lunch, uuid.UUID) {
		t.Helper()
		l, err := lunch.NewLunch(uuid.New(), "Lunch")
		require.NoError(t, err)
		l.AddProduct(uuid.New())
		return l, l.Items()[0].ID
	}

	t.Run("updates the quantity", func(t *testing.T) {
		l, itemID := newLunchWithItem(t)
		require.NoError(t, l.SetItemQuantity(itemID, 5))
		assert.Equal(t, 5, l.Items()[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		l, itemID := newLunchWithItem(t)
		require.NoError(t, l.SetItemQuantity(itemID, 0))
		assert.True(t, l.IsEmpty())
	})

	t.Run("negative quantity fails", func(t *testing.T) {
		l, itemID := newLunchWithItem(t)
		assert.ErrorIs(t, l.SetItemQuantity(itemID, -1), lunch.ErrInvalidQuantity)
		assert.Equal(t, 1, l.Items()[0].Quantity)
	})

	t.Run("unknown item fails", func(t *testing.T) {
		l, _ := newLunchWithItem(t)
		assert.ErrorIs(t, l.SetItemQuantity(uuid.New(), 3), lunch.ErrItemNotFound)
	})
}

func TestLunchOwnedBy(t *testing.T) {
	owner := uuid.New()
	l, err := lunch.NewLunch(owner, "Lunch")
	require.NoError(t, err)

	assert.True(t, l.OwnedBy(owner))
	assert.False(t, l.OwnedBy(uuid.New()))
}

func TestLunchItemsReturnsCopy(t *testing.T) {
	l, err := lunch.NewLunch(uuid.New(), "Lunch")
	require.NoError(t, err)
	l.AddProduct(uuid.New())

	items := l.Items()
	items[0].Quantity = 42
	assert.Equal(t, 1, l.Items()[0].Quantity)
}
