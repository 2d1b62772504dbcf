package models

import (
	"fmt"
	"net/url"
)

// TableStatus represents occupancy shown on the floor dashboard
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

type Table struct {
	ID       uint        `json:"id"`
	Name     string      `json:"name"`
	Capacity int         `json:"capacity"`
	Status   TableStatus `json:"status"`
}

// QRCodeURL builds the public QR image URL for this table's guest menu
// route. Rendering is delegated to the qrserver.com image service; the
// client never generates image bytes itself.
func (t Table) QRCodeURL(appBaseURL string, size int) string {
	target := fmt.Sprintf("%s/tables/%d", appBaseURL, t.ID)
	return fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=%dx%d&data=%s",
		size, size, url.QueryEscape(target))
}

func ParseTableStatus(s string) (TableStatus, error) {
	switch TableStatus(s) {
	case TableAvailable, TableOccupied, TableReserved:
		return TableStatus(s), nil
	}
	return "", fmt.Errorf("unknown table status %q", s)
}
