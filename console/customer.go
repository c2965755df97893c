package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"restaurant-desk/models"
	"restaurant-desk/services"
)

// customerSession registers a customer and runs the customer menu. The
// customer and their orders are dropped when it returns.
func (c *Console) customerSession(ctx context.Context) error {
	name, err := c.prompt("Enter Your Name: ")
	if err != nil {
		return err
	}
	phone, err := c.prompt("Enter Your Phone Number: ")
	if err != nil {
		return err
	}
	address, err := c.prompt("Enter Your Address: ")
	if err != nil {
		return err
	}

	customer := services.NewCustomer(name, phone, address, c.orderCapacity)
	sessionID := customer.SessionID.String()
	c.metrics.RecordLogin("customer", nil)
	c.log.Info("customer_login", sessionID, "customer session started", slog.String("customer", customer.Name))

	for {
		if ctx.Err() != nil {
			return errQuit
		}
		c.title("Customer Menu:")
		c.println("1. View Menu")
		c.println("2. Place Order")
		c.println("3. View Orders")
		c.println("4. Delete Order")
		c.println("5. Edit Order")
		c.println("6. Exit")

		choice, err := c.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			c.showMenu()
		case 2:
			err = c.placeOrder(customer)
		case 3:
			c.viewOrders(customer)
		case 4:
			err = c.deleteOrder(customer)
		case 5:
			err = c.editOrder(customer)
		case 6:
			c.log.Info("customer_logout", sessionID, "customer session ended",
				slog.Int("orders", customer.Orders.Len()),
				slog.String("total", models.FormatPrice(customer.Orders.Total())))
			c.println("Thank you for dining with us!")
			return errQuit
		default:
			c.invalidChoice()
		}
		if err != nil {
			return err
		}
	}
}

// placeOrder collects item names until "done". Unknown names are reported
// right away and no quantity is asked for them.
func (c *Console) placeOrder(customer *services.Customer) error {
	c.println(fmt.Sprintf("Welcome, %s!", customer.Name))
	c.showMenu()

	var lines []models.OrderLine
	for {
		name, err := c.prompt("Enter an item name to order (or 'done' to finish): ")
		if err != nil {
			return err
		}
		if name == "done" {
			break
		}
		if _, ok := c.menu.FindItem(name); !ok {
			c.fail("Item not found in the menu.")
			continue
		}
		qty, _, err := c.promptInt("Enter the quantity: ")
		if err != nil {
			return err
		}
		lines = append(lines, models.OrderLine{ItemName: name, Quantity: qty})
	}

	if len(lines) == 0 {
		c.println("No items ordered.")
		return nil
	}

	res := customer.Orders.PlaceOrder(c.menu, lines)
	c.metrics.RecordOrderLines(len(res.Added), len(res.Rejected))
	for _, rej := range res.Rejected {
		c.fail(lineErrorMessage(rej))
	}
	if len(res.Added) == 0 {
		c.fail("No items were added to your order.")
		return nil
	}
	c.log.Info("order_placed", customer.SessionID.String(), "order placed",
		slog.Int("lines", len(res.Added)), slog.Int("rejected", len(res.Rejected)))
	c.success("Order placed successfully!")
	return nil
}

func lineErrorMessage(e services.LineError) string {
	switch {
	case errors.Is(e, services.ErrItemNotFound):
		return fmt.Sprintf("'%s': item not found in the menu.", e.Line.ItemName)
	case errors.Is(e, services.ErrInvalidQuantity):
		return fmt.Sprintf("'%s': invalid quantity. Quantity must be greater than 0.", e.Line.ItemName)
	case errors.Is(e, services.ErrLedgerFull):
		return fmt.Sprintf("'%s': your order list is full.", e.Line.ItemName)
	default:
		return e.Error()
	}
}

func (c *Console) viewOrders(customer *services.Customer) {
	c.title(fmt.Sprintf("Orders for %s:", customer.Name))
	views := customer.Orders.ViewOrders()
	if len(views) == 0 {
		c.println("No orders yet.")
		return
	}
	for _, v := range views {
		c.println(fmt.Sprintf("[%d] %s - Quantity: %d - Total: $%s",
			v.Index, v.Summary, v.Quantity, models.FormatPrice(v.Total)))
	}
	c.println(fmt.Sprintf("Order total: $%s", models.FormatPrice(customer.Orders.Total())))
}

func (c *Console) deleteOrder(customer *services.Customer) error {
	index, ok, err := c.promptInt("Enter the order index to delete: ")
	if err != nil {
		return err
	}
	if !ok {
		index = -1
	}

	_, err = customer.Orders.DeleteOrder(index)
	c.metrics.RecordOrderChange("delete", err)
	if err != nil {
		c.fail("Invalid order index. Cannot delete.")
		return nil
	}
	c.log.Info("order_deleted", customer.SessionID.String(), "order line deleted", slog.Int("index", index))
	c.success("Order deleted successfully.")
	return nil
}

func (c *Console) editOrder(customer *services.Customer) error {
	index, ok, err := c.promptInt("Enter the order index to edit: ")
	if err != nil {
		return err
	}
	if !ok {
		index = -1
	}
	qty, _, err := c.promptInt("Enter the new quantity: ")
	if err != nil {
		return err
	}

	err = customer.Orders.EditOrder(index, qty)
	c.metrics.RecordOrderChange("edit", err)
	switch {
	case errors.Is(err, services.ErrIndexOutOfRange):
		c.fail("Invalid order index. Cannot edit.")
	case errors.Is(err, services.ErrInvalidQuantity):
		c.fail("Invalid quantity. Quantity must be greater than 0.")
	case err != nil:
		c.fail(err.Error())
	default:
		c.log.Info("order_edited", customer.SessionID.String(), "order line edited",
			slog.Int("index", index), slog.Int("quantity", qty))
		c.success("Order quantity updated successfully.")
	}
	return nil
}
