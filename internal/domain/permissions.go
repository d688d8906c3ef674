package domain

type Permission string

const (
	PermManageTeam         Permission = "manage_team"
	PermManageCustomers    Permission = "manage_customers"
	PermViewCustomers      Permission = "view_customers"
	PermManageWorkOrders   Permission = "manage_work_orders"
	PermViewWorkOrders     Permission = "view_work_orders"
	PermUpdateWorkStatus   Permission = "update_work_status"
	PermManageInvoices     Permission = "manage_invoices"
	PermManageParts        Permission = "manage_parts"
	PermViewParts          Permission = "view_parts"
	PermManagePartRequests Permission = "manage_part_requests"
	PermManageSuppliers    Permission = "manage_suppliers"
	PermManageAppointments Permission = "manage_appointments"
	PermManageSettings     Permission = "manage_settings"
	PermViewReports        Permission = "view_reports"
	PermSendSMS            Permission = "send_sms"
)

// rolePermissions is the canonical role → base permission table. It is pure
// data: nothing in this package enforces it.
var rolePermissions = map[MemberRole][]Permission{
	MemberRoleAdmin: {
		PermManageTeam, PermManageCustomers, PermManageWorkOrders,
		PermManageInvoices, PermManageParts, PermViewReports, PermManageSettings,
	},
	MemberRoleManager: {
		PermManageCustomers, PermManageWorkOrders, PermManageInvoices,
		PermViewReports, PermManageParts,
	},
	MemberRoleTechnician: {
		PermViewCustomers, PermManageWorkOrders, PermViewParts, PermUpdateWorkStatus,
	},
	MemberRoleReceptionist: {
		PermManageCustomers, PermViewWorkOrders, PermManageAppointments, PermSendSMS,
	},
	MemberRolePartsManager: {
		PermManageParts, PermManageSuppliers, PermViewWorkOrders, PermManagePartRequests,
	},
}

// BasePermissions returns a copy of the base permission set for a role.
// Unknown roles get an empty set.
func BasePermissions(role MemberRole) []Permission {
	base, ok := rolePermissions[role]
	if !ok {
		return []Permission{}
	}
	perms := make([]Permission, len(base))
	copy(perms, base)
	return perms
}
