package domain

import "github.com/shopspring/decimal"

type Channel string

const (
	ChannelOnline      Channel = "ONLINE"
	ChannelStore       Channel = "STORE"
	ChannelMarketplace Channel = "MARKETPLACE"
	ChannelPhone       Channel = "PHONE"
	ChannelWhatsApp    Channel = "WHATSAPP"
)

var Channels = []Channel{ChannelOnline, ChannelStore, ChannelMarketplace, ChannelPhone, ChannelWhatsApp}

type Sale struct {
	SaleDate   Date            `col:"sale_date"`
	SKU        string          `col:"sku"`
	Quantity   int             `col:"quantity"`
	Channel    Channel         `col:"channel"`
	TotalValue decimal.Decimal `col:"total_value"`
}

type Purchase struct {
	SKU          string          `col:"sku"`
	PurchaseDate Date            `col:"purchase_date"`
	Quantity     int             `col:"quantity"`
	Manufacturer string          `col:"manufacturer"`
	UnitPrice    decimal.Decimal `col:"unit_price"`
}
