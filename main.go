package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cafe-management-client/auth"
	"cafe-management-client/callstate"
	"cafe-management-client/cart"
	"cafe-management-client/checkout"
	"cafe-management-client/client"
	"cafe-management-client/config"
	"cafe-management-client/models"
	"cafe-management-client/statemachine"
)

func main() {
	mode := flag.String("mode", "guest", "guest | dashboard")
	table := flag.Uint("table", 0, "guest: table number from the QR code")
	flag.Parse()

	cfg := config.Load()
	tokens := auth.NewFileStore(cfg.TokenFile)
	api := client.New(cfg, tokens)
	api.SetUnauthorizedHook(func() {
		log.Println("Session expired. Please log in again.")
	})

	ctx := context.Background()
	switch *mode {
	case "guest":
		runGuest(ctx, api, cfg, uint(*table))
	case "dashboard":
		if !auth.Guard(tokens) {
			log.Fatal("No usable session cached. Log in and try again.")
		}
		runDashboard(ctx, api)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// runGuest walks the QR-code ordering flow: browse the menu, build a
// cart, check out, land on the table's order view.
func runGuest(ctx context.Context, api *client.Client, cfg config.Config, tableID uint) {
	if tableID == 0 {
		log.Fatal("guest mode needs -table (the number encoded in the table's QR code)")
	}

	var menu callstate.Tracker
	products, ok := callstate.Run(&menu, func() ([]models.Product, error) {
		return api.ListProducts(ctx)
	})
	if !ok {
		log.Fatal(menu.Err())
	}

	byID := make(map[uint]models.Product, len(products))
	fmt.Printf("Menu — table %d\n", tableID)
	for _, p := range products {
		byID[p.ID] = p
		fmt.Printf("  [%d] %-24s $%s  (%s)\n", p.ID, p.Name, p.Price.StringFixed(2), p.Category)
	}
	fmt.Println("Commands: add <id> | remove <id> | name <your name> | cart | checkout | quit")

	crt := cart.New()
	flow := checkout.New(api, crt, cfg)
	flow.SelectTable(tableID)

	scanner := bufio.NewScanner(os.Stdin)
	for fmt.Print("> "); scanner.Scan(); fmt.Print("> ") {
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch cmd {
		case "add", "remove":
			id, err := strconv.ParseUint(arg, 10, 32)
			if err != nil {
				fmt.Println("usage:", cmd, "<product id>")
				continue
			}
			if cmd == "add" {
				p, found := byID[uint(id)]
				if !found {
					fmt.Println("no such product")
					continue
				}
				crt.Add(p)
			} else {
				crt.Remove(uint(id))
			}
			fmt.Printf("cart: %d items, $%s\n", crt.TotalItems(), crt.TotalPrice().StringFixed(2))
		case "name":
			flow.SetGuestName(arg)
		case "cart":
			for _, line := range crt.Lines() {
				fmt.Printf("  %dx %-24s $%s\n", line.Quantity, line.Name,
					line.UnitPrice.Mul(decimalFromInt(line.Quantity)).StringFixed(2))
			}
			fmt.Printf("  total: $%s\n", crt.TotalPrice().StringFixed(2))
		case "checkout":
			outcome, err := flow.Submit(ctx)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(outcome.Message)
			time.Sleep(outcome.Delay)
			showTableOrders(ctx, api, tableID)
			return
		case "quit":
			return
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

// showTableOrders is the table order view both checkout outcomes
// navigate to.
func showTableOrders(ctx context.Context, api *client.Client, tableID uint) {
	orders, err := api.ListOrdersByTable(ctx, tableID)
	if err != nil {
		fmt.Println(client.ErrorMessage(err))
		return
	}
	fmt.Printf("Orders for table %d:\n", tableID)
	for _, o := range orders {
		fmt.Printf("  #%d  %-10s $%s  %s\n", o.ID,
			statemachine.Label(o.Status), o.Total.StringFixed(2), o.GuestName)
	}
}

// runDashboard prints the staff overview from one concurrent snapshot.
func runDashboard(ctx context.Context, api *client.Client) {
	snap, err := api.FetchSnapshot(ctx)
	if err != nil {
		log.Fatal(client.ErrorMessage(err))
	}
	fmt.Printf("Users: %d  Tables: %d  Products: %d  Orders: %d\n",
		len(snap.Users), len(snap.Tables), len(snap.Products), len(snap.Orders))

	counts := map[models.OrderStatus]int{}
	for _, o := range snap.Orders {
		counts[o.Status]++
	}
	for _, s := range statemachine.AllStatuses() {
		fmt.Printf("  %-10s %d\n", statemachine.Label(s), counts[s])
	}
	for _, t := range snap.Tables {
		fmt.Printf("  table %-12s %-9s seats %d\n", t.Name, t.Status, t.Capacity)
	}
}

func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }
