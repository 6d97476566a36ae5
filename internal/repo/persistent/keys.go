package persistent

// Storage keys, unchanged from the storefront. No versioning or migration
// exists for these documents.
const (
	keyUsers       = "users"
	keyCurrentUser = "currentUser"
	keySession     = "userSession"
	keyCourses     = "pianoCourses"
	keyEnrollments = "enrollments"
	keyCart        = "shoppingCart"
	keyWishlist    = "wishlist"
	keyAdminUsers  = "adminUsers"
)
