// Package cli provides an interactive console for operating the group
// ordering system without the HTTP server: importing order files, running
// grouping, retagging group orders and printing the reports.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"grouporders/internal/adapters/in/csvintake"
	"grouporders/internal/core/application/usecases/commands"
	"grouporders/internal/core/application/usecases/queries"
	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/order"
	"grouporders/internal/pkg/errs"
)

const menu = `
1. Import orders from file
2. Group pending orders
3. Change group order status
4. Show report
5. Exit
> `

// Console drives the system through a numbered text menu on in/out.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	loader        *csvintake.Loader
	groupHandler  commands.GroupPendingOrdersCommandHandler
	statusHandler commands.ChangeGroupOrderStatusCommandHandler

	recentGroupOrdersHandler queries.GetRecentGroupOrdersQueryHandler
	ungroupedOrdersHandler   queries.GetUngroupedOrdersQueryHandler
}

// NewConsole creates a console reading commands from in and writing to out.
func NewConsole(
	in io.Reader,
	out io.Writer,
	loader *csvintake.Loader,
	groupHandler commands.GroupPendingOrdersCommandHandler,
	statusHandler commands.ChangeGroupOrderStatusCommandHandler,
	recentGroupOrdersHandler queries.GetRecentGroupOrdersQueryHandler,
	ungroupedOrdersHandler queries.GetUngroupedOrdersQueryHandler,
) *Console {
	return &Console{
		in:                       bufio.NewScanner(in),
		out:                      out,
		loader:                   loader,
		groupHandler:             groupHandler,
		statusHandler:            statusHandler,
		recentGroupOrdersHandler: recentGroupOrdersHandler,
		ungroupedOrdersHandler:   ungroupedOrdersHandler,
	}
}

// Run loops over the menu until the operator exits or input ends.
// Operation failures are printed and the loop continues; only an unusable
// input stream terminates with an error.
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, menu)

		choice, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}

		switch choice {
		case "1":
			c.importOrders(ctx)
		case "2":
			c.groupPendingOrders(ctx)
		case "3":
			c.changeGroupOrderStatus(ctx)
		case "4":
			c.showReport(ctx)
		case "5":
			fmt.Fprintln(c.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown choice, pick 1-5.")
		}
	}
}

func (c *Console) importOrders(ctx context.Context) {
	fmt.Fprint(c.out, "File path: ")
	path, ok := c.readLine()
	if !ok || path == "" {
		fmt.Fprintln(c.out, "No path given.")
		return
	}

	summary, err := c.loader.LoadFile(ctx, path)
	if err != nil {
		fmt.Fprintf(c.out, "Import failed: %s\n", err)
		return
	}

	fmt.Fprintf(c.out, "Imported %d orders (%d skipped, %d malformed).\n",
		summary.Submitted, summary.Skipped, summary.Malformed)
}

func (c *Console) groupPendingOrders(ctx context.Context) {
	cmd := commands.NewGroupPendingOrdersCommand()

	if err := c.groupHandler.Handle(ctx, cmd); err != nil {
		fmt.Fprintf(c.out, "Grouping failed: %s\n", err)
		return
	}

	fmt.Fprintln(c.out, "Pending orders grouped.")
}

func (c *Console) changeGroupOrderStatus(ctx context.Context) {
	fmt.Fprint(c.out, "Group order id: ")
	rawID, ok := c.readLine()
	if !ok {
		return
	}

	parsed, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintln(c.out, "Id must be a number.")
		return
	}

	groupOrderID, err := kernel.NewID(parsed)
	if err != nil {
		fmt.Fprintln(c.out, "Id must be positive.")
		return
	}

	fmt.Fprint(c.out, "New status: ")
	status, ok := c.readLine()
	if !ok {
		return
	}

	cmd, err := commands.NewChangeGroupOrderStatusCommand(groupOrderID, order.Status(status))
	if err != nil {
		fmt.Fprintf(c.out, "Invalid status: %s\n", err)
		return
	}

	if err = c.statusHandler.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			fmt.Fprintf(c.out, "Group order %s not found.\n", groupOrderID)
			return
		}
		fmt.Fprintf(c.out, "Status change failed: %s\n", err)
		return
	}

	fmt.Fprintf(c.out, "Group order %s is now %q.\n", groupOrderID, status)
}

func (c *Console) showReport(ctx context.Context) {
	groups, err := c.recentGroupOrdersHandler.Handle(ctx, queries.NewGetRecentGroupOrdersQuery())
	if err != nil {
		fmt.Fprintf(c.out, "Report failed: %s\n", err)
		return
	}

	fmt.Fprintln(c.out, "\nRecent group orders:")
	if len(groups) == 0 {
		fmt.Fprintln(c.out, "  (none)")
	}
	for _, g := range groups {
		fmt.Fprintf(c.out, "  #%s  %s  %s  %s  total %s for %d items\n",
			g.ID, g.OrderDate.Format("2006-01-02"), g.RestaurantName, g.Status, g.TotalPrice, g.ItemCount)
	}

	orders, err := c.ungroupedOrdersHandler.Handle(ctx, queries.NewGetUngroupedOrdersQuery())
	if err != nil {
		fmt.Fprintf(c.out, "Report failed: %s\n", err)
		return
	}

	fmt.Fprintln(c.out, "\nUngrouped orders:")
	if len(orders) == 0 {
		fmt.Fprintln(c.out, "  (none)")
	}
	for _, o := range orders {
		fmt.Fprintf(c.out, "  #%s  %s  %s (alt: %s)  %s  %s\n",
			o.ID, o.UserName, o.PreferredRestaurantName, o.AlternateRestaurantName, o.MenuItemName, o.Price)
	}
}

// readLine reads one trimmed line; ok is false when the stream ends.
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}
