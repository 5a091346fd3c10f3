package lunch

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("lunch name cannot be empty")
	ErrNameTooLong     = errors.New("lunch name too long")
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
	ErrItemNotFound    = errors.New("item not found in lunch")
)

const MaxNameLength = 120

// Item is one product line in a lunch template. Quantities live here;
// unit prices are resolved from the catalog when the lunch is scheduled,
// not stored on the template.
type Item struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// Lunch is a saved, reusable basket of products ("lunch list") that a
// customer schedules for recurring delivery.
type Lunch struct {
	id        uuid.UUID
	userID    uuid.UUID
	name      string
	status    Status
	items     []Item
	createdAt time.Time
	updatedAt time.Time
}

func NewLunch(userID uuid.UUID, name string) (*Lunch, error) {
	cleaned, err := validateName(name)
	if err != nil {
		return nil, err
	}

	return &Lunch{
		id:     uuid.New(),
		userID: userID,
		name:   cleaned,
		status: StatusActive,
	}, nil
}

func ReconstructLunch(id, userID uuid.UUID, name string, status Status, items []Item, createdAt, updatedAt time.Time) *Lunch {
	return &Lunch{
		id:        id,
		userID:    userID,
		name:      name,
		status:    status,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (l *Lunch) ID() uuid.UUID        { return l.id }
func (l *Lunch) UserID() uuid.UUID    { return l.userID }
func (l *Lunch) Name() string         { return l.name }
func (l *Lunch) Status() Status       { return l.status }
func (l *Lunch) CreatedAt() time.Time { return l.createdAt }
func (l *Lunch) UpdatedAt() time.Time { return l.updatedAt }

func (l *Lunch) Items() []Item {
	items := make([]Item, len(l.items))
	copy(items, l.items)
	return items
}

func (l *Lunch) IsEmpty() bool {
	return len(l.items) == 0
}

func (l *Lunch) OwnedBy(userID uuid.UUID) bool {
	return l.userID == userID
}

func (l *Lunch) Rename(name string) error {
	cleaned, err := validateName(name)
	if err != nil {
		return err
	}
	l.name = cleaned
	return nil
}

// AddProduct increments the quantity when the product is already on the
// list, otherwise appends a new line with quantity one.
func (l *Lunch) AddProduct(productID uuid.UUID) {
	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items[i].Quantity++
			return
		}
	}
	l.items = append(l.items, Item{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  1,
	})
}

// SetItemQuantity updates a line's quantity; zero removes the line.
func (l *Lunch) SetItemQuantity(itemID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	for i := range l.items {
		if l.items[i].ID != itemID {
			continue
		}
		if quantity == 0 {
			l.items = append(l.items[:i], l.items[i+1:]...)
		} else {
			l.items[i].Quantity = quantity
		}
		return nil
	}
	return ErrItemNotFound
}

func validateName(name string) (string, error) {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" {
		return "", ErrEmptyName
	}
	if len(cleaned) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return cleaned, nil
}
