package controllers

import (
	"sort"

	"github.com/Eyner-schoonewolff/checkout-api/utils"
	"github.com/gin-gonic/gin"
)

// ListTransactions returns the transaction history for a customer,
// newest first, paginated locally
func ListTransactions(c *gin.Context) {
	utils.LogInfo("ListTransactions called")

	customerID := c.DefaultQuery("customer_id", cfg.DemoCustomerID)
	pagination := utils.NewPagination(c)

	txs, err := backendClient.GetTransactionsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		utils.LogError("Failed to fetch transactions for customer %s: %v", customerID, err)
		utils.BadGateway(c, "Could not load transactions, please try again", err.Error())
		return
	}

	// Optional status filter, e.g. ?status=COMPLETED
	if status := c.Query("status"); status != "" {
		filtered := txs[:0]
		for _, tx := range txs {
			if string(tx.Status) == status {
				filtered = append(filtered, tx)
			}
		}
		txs = filtered
	}

	// RFC3339 timestamps sort lexicographically, so string order is chronological
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].CreatedAt > txs[j].CreatedAt
	})

	start, end := pagination.Bounds(len(txs))
	utils.SuccessWithPagination(c, "Transactions retrieved successfully",
		txs[start:end], int64(len(txs)), pagination.Page, pagination.Limit)
}
