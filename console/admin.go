package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"restaurant-desk/models"
	"restaurant-desk/services"

	"github.com/google/uuid"
)

// adminSession asks for credentials and, on success, runs the admin menu.
// A failed login returns to the top level with a nil error.
func (c *Console) adminSession(ctx context.Context) error {
	username, err := c.prompt("Enter Admin Username: ")
	if err != nil {
		return err
	}
	password, err := c.prompt("Enter Admin Password: ")
	if err != nil {
		return err
	}

	sessionID := uuid.NewString()
	err = c.admin.Authenticate(username, password)
	c.metrics.RecordLogin("admin", err)
	if err != nil {
		c.log.Warn("admin_login_failed", sessionID, "admin authentication failed", slog.String("username", username))
		c.fail("Authentication failed. Please try again.")
		return nil
	}
	c.log.Info("admin_login", sessionID, "admin logged in", slog.String("username", c.admin.Username()))

	for {
		if ctx.Err() != nil {
			return errQuit
		}
		c.title("Admin Menu:")
		c.println("1. View Cash")
		c.println("2. View Menu")
		c.println("3. Add Item to Menu")
		c.println("4. Delete Item from Menu")
		c.println("5. Log Out")

		choice, err := c.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			c.println(fmt.Sprintf("Cash: $%s", models.FormatPrice(c.admin.ViewCash())))
		case 2:
			c.showMenu()
		case 3:
			if err := c.addMenuItem(sessionID); err != nil {
				return err
			}
		case 4:
			if err := c.deleteMenuItem(sessionID); err != nil {
				return err
			}
		case 5:
			c.log.Info("admin_logout", sessionID, "admin logged out")
			c.println("Admin logged out.")
			return errQuit
		default:
			c.invalidChoice()
		}
	}
}

// addMenuItem returns an error only when input fails; rejected items are reported to the user.
func (c *Console) addMenuItem(sessionID string) error {
	name, err := c.prompt("Enter Item Name: ")
	if err != nil {
		return err
	}
	description, err := c.prompt("Enter Item Description: ")
	if err != nil {
		return err
	}
	priceText, err := c.prompt("Enter Item Price: ")
	if err != nil {
		return err
	}

	price, err := services.ParsePrice(priceText)
	if err != nil {
		c.metrics.RecordMenuChange("add", err)
		c.fail("Invalid price. Enter a non-negative amount such as 8.99.")
		return nil
	}
	item, err := models.NewMenuItem(name, description, price)
	if err != nil {
		c.metrics.RecordMenuChange("add", err)
		c.fail(fmt.Sprintf("Invalid item: %v.", err))
		return nil
	}

	err = c.admin.AddItemToMenu(c.menu, item)
	c.metrics.RecordMenuChange("add", err)
	switch {
	case errors.Is(err, services.ErrDuplicateItem):
		c.fail(fmt.Sprintf("Item '%s' is already on the menu.", item.Name))
	case errors.Is(err, services.ErrMenuFull):
		c.fail("Menu is full. Cannot add more items.")
	case err != nil:
		c.log.Error("menu_add_failed", sessionID, "add menu item", err)
		c.fail(fmt.Sprintf("Could not add item: %v", err))
	default:
		c.metrics.SetMenuSize(c.menu.Len())
		c.log.Info("menu_item_added", sessionID, "menu item added",
			slog.String("item", item.Name), slog.String("price", models.FormatPrice(item.Price)))
		c.success("Item added to the menu.")
	}
	return nil
}

func (c *Console) deleteMenuItem(sessionID string) error {
	name, err := c.prompt("Enter the name of the item to delete: ")
	if err != nil {
		return err
	}

	_, err = c.admin.DeleteItemFromMenu(c.menu, name)
	c.metrics.RecordMenuChange("delete", err)
	if err != nil {
		c.fail(fmt.Sprintf("Item '%s' not found in the menu.", name))
		return nil
	}
	c.metrics.SetMenuSize(c.menu.Len())
	c.log.Info("menu_item_deleted", sessionID, "menu item deleted", slog.String("item", name))
	c.success(fmt.Sprintf("Item '%s' deleted from the menu.", name))
	return nil
}
