package auth

import (
	"testing"

	"go-inventory-pos/internal/models"
)

func TestIsAllowedMatrix(t *testing.T) {
	employeeOps := []Operation{OpViewCatalog, OpAddProduct, OpRestock, OpCreateBill, OpOwnStats}
	managerOps := append([]Operation{OpTeamSales, OpAdjustPrice, OpSalesReport}, employeeOps...)
	adminOps := append([]Operation{OpManageUsers}, managerOps...)

	for _, op := range employeeOps {
		if !IsAllowed(models.RoleEmployee, op) {
			t.Errorf("employee should be allowed %q", op)
		}
	}
	for _, op := range []Operation{OpTeamSales, OpAdjustPrice, OpSalesReport, OpManageUsers} {
		if IsAllowed(models.RoleEmployee, op) {
			t.Errorf("employee must not be allowed %q", op)
		}
	}

	for _, op := range managerOps {
		if !IsAllowed(models.RoleManager, op) {
			t.Errorf("manager should be allowed %q", op)
		}
	}
	if IsAllowed(models.RoleManager, OpManageUsers) {
		t.Error("manager must not manage users")
	}

	for _, op := range adminOps {
		if !IsAllowed(models.RoleAdmin, op) {
			t.Errorf("admin should be allowed %q", op)
		}
	}
}

func TestIsAllowedUnknownInputs(t *testing.T) {
	if IsAllowed("intern", OpViewCatalog) {
		t.Error("unknown role must be denied")
	}
	if IsAllowed(models.RoleAdmin, Operation("drop_tables")) {
		t.Error("unknown operation must be denied")
	}
	if IsAllowed("", OpCreateBill) {
		t.Error("empty role must be denied")
	}
}
