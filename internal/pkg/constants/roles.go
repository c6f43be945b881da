package constants

// User roles
const (
	RoleAdmin    = "admin"
	RoleDriver   = "driver"
	RoleCustomer = "customer"
)

// Route trees and their login screens
const (
	AdminRoot    = "/admin"
	DriverRoot   = "/driver"
	CustomerRoot = "/customer"

	AdminLoginPath    = "/admin/login"
	DriverLoginPath   = "/driver/login"
	CustomerLoginPath = "/customer/login"

	DriverHomePath   = "/driver/home"
	CustomerHomePath = "/customer/home"
)

// Permissions
const (
	PermissionImpersonate = "impersonate"
)

// LoginPathFor returns the login screen of a role
func LoginPathFor(role string) string {
	switch role {
	case RoleAdmin:
		return AdminLoginPath
	case RoleDriver:
		return DriverLoginPath
	default:
		return CustomerLoginPath
	}
}

// HomePathFor returns the landing screen of a role
func HomePathFor(role string) string {
	switch role {
	case RoleAdmin:
		return AdminRoot + "/dashboard"
	case RoleDriver:
		return DriverHomePath
	default:
		return CustomerHomePath
	}
}
