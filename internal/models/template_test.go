package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyDropsExtraHeaderColumns(t *testing.T) {
	wide := TemplateRow{
		Name:             "O1001",
		PartnerID:        "Acme",
		UserID:           "Jane Doe",
		CustCode:         "C-42",
		Salesperson:      "Jane Doe",
		LineName:         "[X1] Widget",
		LineQty:          "2.00",
		LinePrice:        "10.00",
		LineProductID:    "[X1] Widget",
		LineTemplateName: "Widget",
		LineTemplateID:   "[X1] Widget",
	}

	narrow := wide.Legacy()
	assert.Equal(t, wide.Name, narrow.Name)
	assert.Equal(t, wide.PartnerID, narrow.PartnerID)
	assert.Equal(t, wide.UserID, narrow.UserID)
	assert.Equal(t, wide.LineName, narrow.LineName)
	assert.Equal(t, wide.LineTemplateID, narrow.LineTemplateID)
}

func TestToLegacyPreservesOrder(t *testing.T) {
	rows := []TemplateRow{
		{Name: "O1", LineName: "[A] a"},
		{LineName: "[B] b"},
	}

	legacy := ToLegacy(rows)
	assert.Len(t, legacy, 2)
	assert.Equal(t, "O1", legacy[0].Name)
	assert.Equal(t, "[B] b", legacy[1].LineName)
}
