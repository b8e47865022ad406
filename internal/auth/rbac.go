package auth

import "go-inventory-pos/internal/models"

// Operation names every protected endpoint declares before dispatch.
type Operation string

const (
	OpViewCatalog Operation = "view_catalog"
	OpAddProduct  Operation = "add_product"
	OpRestock     Operation = "restock"
	OpCreateBill  Operation = "create_bill"
	OpOwnStats    Operation = "own_stats"
	OpTeamSales   Operation = "team_sales"
	OpAdjustPrice Operation = "adjust_price"
	OpSalesReport Operation = "sales_report"
	OpManageUsers Operation = "manage_users"
)

// permissions maps each operation to the roles allowed to invoke it.
var permissions = map[Operation][]string{
	OpViewCatalog: {models.RoleEmployee, models.RoleManager, models.RoleAdmin},
	OpAddProduct:  {models.RoleEmployee, models.RoleManager, models.RoleAdmin},
	OpRestock:     {models.RoleEmployee, models.RoleManager, models.RoleAdmin},
	OpCreateBill:  {models.RoleEmployee, models.RoleManager, models.RoleAdmin},
	OpOwnStats:    {models.RoleEmployee, models.RoleManager, models.RoleAdmin},
	OpTeamSales:   {models.RoleManager, models.RoleAdmin},
	OpAdjustPrice: {models.RoleManager, models.RoleAdmin},
	OpSalesReport: {models.RoleManager, models.RoleAdmin},
	OpManageUsers: {models.RoleAdmin},
}

// IsAllowed reports whether role may invoke op. Unknown operations and unknown
// roles are always denied.
func IsAllowed(role string, op Operation) bool {
	for _, allowed := range permissions[op] {
		if role == allowed {
			return true
		}
	}
	return false
}
