package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderItemIsNotConstructed indicates that an OrderItem was not created
// through the NewOrderItem constructor.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a line item of an order: a product reference with quantity,
// the weight of a single unit in mass units, the packed dimensions as an
// "LxWxH" string, and the unit price.
//
// Weight drives every capacity check. Volume is derived from the dimensions
// string for reporting but is not checked against any capacity bound; that
// matches the observed behavior of the system this one replaces.
type OrderItem struct {
	productID  kernel.UUID
	quantity   int
	unitWeight int
	dimensions string
	unitPrice  decimal.Decimal

	guard kernel.ConstructorGuard
}

// NewOrderItem creates a validated line item. Quantity and unit weight must
// be positive, the dimensions string must parse as three positive integers
// separated by 'x', and the unit price must not be negative.
func NewOrderItem(
	productID kernel.UUID,
	quantity int,
	unitWeight int,
	dimensions string,
	unitPrice decimal.Decimal,
) (*OrderItem, error) {
	item := &OrderItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitWeight(unitWeight),
		item.setDimensions(dimensions),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was created via NewOrderItem.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (i *OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns how many units of the product the item covers.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// UnitWeight returns the weight of a single unit in mass units.
func (i *OrderItem) UnitWeight() int {
	return i.unitWeight
}

// Dimensions returns the raw "LxWxH" dimensions string.
func (i *OrderItem) Dimensions() string {
	return i.dimensions
}

// UnitPrice returns the price of a single unit.
func (i *OrderItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Weight returns unit weight times quantity.
func (i *OrderItem) Weight() int {
	return i.unitWeight * i.quantity
}

// Volume returns the volume of the item, L*W*H per unit times quantity.
// The dimensions string was validated at construction, so a zero return
// only happens for a zero-value item.
func (i *OrderItem) Volume() int {
	l, w, h, err := parseDimensions(i.dimensions)
	if err != nil {
		return 0
	}
	return l * w * h * i.quantity
}

// TotalPrice returns unit price times quantity.
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// parseDimensions splits an "L x W x H" string on the literal character 'x'
// and parses the three parts as positive integers.
func parseDimensions(s string) (length, width, height int, err error) {
	parts := strings.Split(s, "x")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%q must have the form LxWxH", s)
	}

	dims := make([]int, 3)
	for idx, part := range parts {
		value, convErr := strconv.Atoi(strings.TrimSpace(part))
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%q is not a whole number: %w", part, convErr)
		}
		if value <= 0 {
			return 0, 0, 0, fmt.Errorf("dimension %d must be greater than 0", value)
		}
		dims[idx] = value
	}

	return dims[0], dims[1], dims[2], nil
}

func (i *OrderItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setUnitWeight(unitWeight int) error {
	if unitWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitWeight",
			fmt.Errorf("%d is not greater than 0", unitWeight))
	}
	i.unitWeight = unitWeight
	return nil
}

func (i *OrderItem) setDimensions(dimensions string) error {
	if _, _, _, err := parseDimensions(dimensions); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("dimensions", err)
	}
	i.dimensions = dimensions
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
