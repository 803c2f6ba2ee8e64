package i18n

// Common errors
var (
	ErrNotFound       = NewErrorWithCode("ErrorResourceNotFound", ErrorNotFound)
	ErrUnauthorized   = NewErrorWithCode("ErrorUnauthorized", ErrorUnauthorized)
	ErrForbidden      = NewErrorWithCode("ErrorForbidden", ErrorForbidden)
	ErrBadRequest     = NewErrorWithCode("ErrorBadRequest", ErrorBadRequest)
	ErrInternalServer = NewErrorWithCode("ErrorInternalServer", ErrorInternalServer)
)

// User related errors
var (
	ErrorUserNotFound           = NewErrorWithCode("ErrorUserNotFound", ErrorNotFound)
	ErrorInvalidCredentials     = NewErrorWithCode("ErrorInvalidCredentials", ErrorUnauthorized)
	ErrorInvalidRefreshToken    = NewErrorWithCode("ErrorInvalidRefreshToken", ErrorUnauthorized)
	ErrorEmailExists            = NewErrorWithCode("ErrorEmailExists", ErrorBadRequest)
	ErrorInvalidOldPassword     = NewErrorWithCode("ErrorInvalidOldPassword", ErrorForbidden)
	ErrorEmailPasswordRequired  = NewErrorWithCode("ErrorEmailPasswordRequired", ErrorBadRequest)
	ErrorInsufficientPermission = NewErrorWithCode("ErrorInsufficientPermission", ErrorForbidden)
)

// Owner, tenant and agent related errors
var (
	ErrorOwnerNotFound    = NewErrorWithCode("ErrorOwnerNotFound", ErrorNotFound)
	ErrorTenantNotFound   = NewErrorWithCode("ErrorTenantNotFound", ErrorNotFound)
	ErrorAgentNotFound    = NewErrorWithCode("ErrorAgentNotFound", ErrorNotFound)
	ErrorCnicExists       = NewErrorWithCode("ErrorCnicExists", ErrorBadRequest)
	ErrorCnicExpiryPast   = NewErrorWithCode("ErrorCnicExpiryPast", ErrorBadRequest)
	ErrorTenantEmailTaken = NewErrorWithCode("ErrorTenantEmailTaken", ErrorBadRequest)
)

// Inventory and contract lifecycle errors. Conflicts deliberately map to
// 400 rather than 409 to keep the public API stable.
var (
	ErrorInventoryNotFound     = NewErrorWithCode("ErrorInventoryNotFound", ErrorNotFound)
	ErrorInventoryFields       = NewErrorWithCode("ErrorInventoryFields", ErrorBadRequest)
	ErrorInventoryAlreadySold  = NewErrorWithCode("ErrorInventoryAlreadySold", ErrorBadRequest)
	ErrorInvalidStatus         = NewErrorWithCode("ErrorInvalidStatus", ErrorBadRequest)
	ErrorInvalidOwnerID        = NewErrorWithCode("ErrorInvalidOwnerID", ErrorBadRequest)
	ErrorInvalidTenantID       = NewErrorWithCode("ErrorInvalidTenantID", ErrorBadRequest)
	ErrorInvalidInventoryID    = NewErrorWithCode("ErrorInvalidInventoryID", ErrorBadRequest)
	ErrorInvalidAgentID        = NewErrorWithCode("ErrorInvalidAgentID", ErrorBadRequest)
	ErrorInvalidContractID     = NewErrorWithCode("ErrorInvalidContractID", ErrorBadRequest)
	ErrorContractNotFound      = NewErrorWithCode("ErrorContractNotFound", ErrorNotFound)
	ErrorContractPartiesNeeded = NewErrorWithCode("ErrorContractPartiesNeeded", ErrorBadRequest)
)

// User related success messages
const (
	SuccessLogin           = "SuccessLogin"
	SuccessUserRegistered  = "SuccessUserRegistered"
	SuccessTokenRefreshed  = "SuccessTokenRefreshed"
	SuccessPasswordChanged = "SuccessPasswordChanged"
	SuccessUserInfo        = "SuccessUserInfo"
)

// Party related success messages
const (
	SuccessOwnerAdded    = "SuccessOwnerAdded"
	SuccessOwnerUpdated  = "SuccessOwnerUpdated"
	SuccessOwnerInfo     = "SuccessOwnerInfo"
	SuccessOwnerList     = "SuccessOwnerList"
	SuccessTenantAdded   = "SuccessTenantAdded"
	SuccessTenantUpdated = "SuccessTenantUpdated"
	SuccessTenantInfo    = "SuccessTenantInfo"
	SuccessTenantList    = "SuccessTenantList"
	SuccessCnicUpdated   = "SuccessCnicUpdated"
	SuccessAgentAdded    = "SuccessAgentAdded"
	SuccessAgentList     = "SuccessAgentList"
)

// Inventory and contract related success messages
const (
	SuccessInventoryAdded         = "SuccessInventoryAdded"
	SuccessInventoryUpdated       = "SuccessInventoryUpdated"
	SuccessInventoryStatusUpdated = "SuccessInventoryStatusUpdated"
	SuccessInventoryInfo          = "SuccessInventoryInfo"
	SuccessInventoryList          = "SuccessInventoryList"
	SuccessInventorySold          = "SuccessInventorySold"
	SuccessContractAdded          = "SuccessContractAdded"
	SuccessContractUpdated        = "SuccessContractUpdated"
	SuccessContractInfo           = "SuccessContractInfo"
	SuccessContractList           = "SuccessContractList"
	SuccessDashboard              = "SuccessDashboard"
	SuccessReport                 = "SuccessReport"
)
