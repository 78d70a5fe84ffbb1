package order

import (
	"fmt"

	"github.com/google/uuid"
)

// CartLine is one product in a cart with the stock level seen when it was
// added. The stock snapshot caps how far the quantity may be incremented.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Quantity  int       `json:"quantity"`
}

// Cart holds the lines of an in-progress order, in the order they were added.
// A quantity never reaches zero: decrementing the last unit removes the line.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add puts one unit of a product in the cart, incrementing the quantity if
// the product is already there. The add is refused, leaving the cart
// untouched, when another unit would exceed the product's stock.
func (c *Cart) Add(productID uuid.UUID, name string, price float64, stock int) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			if c.Lines[i].Quantity+1 > c.Lines[i].Stock {
				return fmt.Errorf("only %d of %s in stock", c.Lines[i].Stock, c.Lines[i].Name)
			}
			c.Lines[i].Quantity++
			return nil
		}
	}
	if stock < 1 {
		return fmt.Errorf("%s is out of stock", name)
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Stock:     stock,
		Quantity:  1,
	})
	return nil
}

// UpdateQuantity adjusts a line by delta. Going above the stock snapshot is
// refused; reaching zero or below removes the line.
func (c *Cart) UpdateQuantity(productID uuid.UUID, delta int) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		next := c.Lines[i].Quantity + delta
		if next > c.Lines[i].Stock {
			return fmt.Errorf("only %d of %s in stock", c.Lines[i].Stock, c.Lines[i].Name)
		}
		if next <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
		c.Lines[i].Quantity = next
		return nil
	}
	return fmt.Errorf("product not in cart")
}

// Subtotal sums price × quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}
