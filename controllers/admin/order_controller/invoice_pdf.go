package order_controller

import (
	"bytes"
	"fmt"
	"log"

	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

func generateOrderInvoicePDF(order *models.Order) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Invoice Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	// Company Info
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("ZERZABAR", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("support@zerzabar.shop", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Billing Section
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.Customer.Name, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{
				Size:  10,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(order.Customer.Email, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Items Table Header
	m.Row(6, func() {
		m.Col(5, func() {
			m.Text("Description", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("SKU", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(1, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	// Items
	for _, item := range order.Items {
		itemTotal := item.Price * float64(item.Quantity)
		m.Row(6, func() {
			m.Col(5, func() {
				m.Text(item.ProductName, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(item.SKU, props.Text{
					Size:  8,
					Color: mediumGray,
				})
			})
			m.Col(1, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Price), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", itemTotal), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(6, func() {})

	// Totals
	m.Row(5, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Subtotal", props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.Subtotal), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Shipping", props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.ShippingCost), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	// Total
	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", order.TotalAmount), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(12, func() {})

	// Footer
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for your business!", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	// Output to buffer
	buf, err := m.Output()
	if err != nil {
		log.Printf("[admin.order.invoice] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}

	return &buf
}
