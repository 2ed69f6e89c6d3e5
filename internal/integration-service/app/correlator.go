package app

import (
	"context"
	"fmt"

	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/ports"
)

// Correlator finds the order a customer just placed by scanning the order
// listing. The first entry owned by the customer wins, so a customer with
// several orders resolves to whichever the listing returns first.
type Correlator struct {
	orders   ports.OrderService
	pageSize int64
	maxPages int64
}

func NewCorrelator(orders ports.OrderService, pageSize, maxPages int64) *Correlator {
	if maxPages < 1 {
		maxPages = 1
	}
	return &Correlator{orders: orders, pageSize: pageSize, maxPages: maxPages}
}

// Resolve scans up to maxPages pages starting at page 0.
func (c *Correlator) Resolve(ctx context.Context, customerID string) (string, error) {
	var page int64
	for ; page < c.maxPages; page++ {
		res, err := c.orders.ListOrders(ctx, c.pageSize, page)
		if err != nil {
			return "", err
		}
		for _, o := range res.Orders {
			if o.CustomerID == customerID {
				return o.ID, nil
			}
		}
		if len(res.Orders) == 0 || page+1 >= res.TotalPages {
			page++
			break
		}
	}
	return "", fmt.Errorf("%w: customer %s not in %d page(s) of %d", domain.ErrCorrelationMiss, customerID, page, c.pageSize)
}
