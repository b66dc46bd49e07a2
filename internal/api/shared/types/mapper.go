package types

import (
	"github.com/feral-file/ff-leaderboard/internal/analytics"
)

// ToSortOrder converts API Order to analytics SortOrder
func ToSortOrder(order Order) analytics.SortOrder {
	switch order {
	case OrderAsc:
		return analytics.SortAsc
	case OrderDesc:
		return analytics.SortDesc
	default:
		return analytics.SortDesc
	}
}
