package utils

// Authentication errors
const (
	ErrAuthenticationKeyNotFound = "authentication_key_not_found"
	ErrUnauthorized              = "unauthorized"
	ErrTokenExpired              = "token_expired"
	ErrForbidden                 = "forbidden_access"
	ErrAccountSuspended          = "account_suspended"
)

// Request errors
const (
	ErrBadRequest     = "bad_request"
	ErrUserIDNotFound = "user_id_not_found"
)

// User-related errors
const (
	ErrUserNotFound       = "user_not_found"
	ErrUserAlreadyExist   = "user_already_exist"
	ErrAlreadySuspended   = "user_already_suspended"
	ErrInstructorNotFound = "instructor_not_found"
)

// Courses-releated errors
const (
	ErrCourseNotExist    = "course_not_exist"
	ErrAlreadyInCart     = "course_already_in_cart"
	ErrAlreadyEnrolled   = "course_already_enrolled"
	ErrAlreadyWishlisted = "course_already_wishlisted"
	ErrNotEnrolled       = "course_not_enrolled"
	ErrFeedbackExist     = "feedback_already_exist"
)

// Payment errors
const (
	ErrCheckoutSession = "checkout_session_failed"
	ErrRetrieveSession = "retrieve_session_failed"
	ErrExpireSession   = "expire_session_failed"
	ErrConfirmPurchase = "confirm_purchase_failed"
	ErrGenerateToken   = "generate_token_failed"
)

// Database errors
const (
	ErrSaveData   = "error_save_data"
	ErrGetData    = "error_get_data"
	ErrUpdateData = "error_update_data"
	ErrDeleteData = "error_delete_data"
)

// Internal errors
const (
	ErrParseData  = "parse_data_failed"
	ErrSignature  = "generate_signature_failed"
	ErrStoreRedis = "store_redis_failed"
)
