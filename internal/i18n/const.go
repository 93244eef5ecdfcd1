package i18n

// Common errors
var (
	ErrBadRequest     = NewErrorWithCode("ErrorBadRequest", ErrorBadRequest)
	ErrUnauthorized   = NewErrorWithCode("ErrorUnauthorized", ErrorUnauthorized)
	ErrForbidden      = NewErrorWithCode("ErrorForbidden", ErrorForbidden)
	ErrNotFound       = NewErrorWithCode("ErrorResourceNotFound", ErrorNotFound)
	ErrInternalServer = NewErrorWithCode("ErrorInternalServer", ErrorInternalServer)

	ErrorInvalidRequest = NewErrorWithCode("ErrorInvalidRequest", ErrorBadRequest)
	ErrorInvalidID      = NewErrorWithCode("ErrorInvalidID", ErrorBadRequest)
	ErrorInvalidToken   = NewErrorWithCode("ErrorInvalidToken", ErrorUnauthorized)
	ErrorMissingToken   = NewErrorWithCode("ErrorMissingToken", ErrorUnauthorized)
	ErrorRoleNotAllowed = NewErrorWithCode("ErrorRoleNotAllowed", ErrorForbidden)
)

// User related errors
var (
	ErrorUserNotFound       = NewErrorWithCode("ErrorUserNotFound", ErrorNotFound)
	ErrorInvalidCredentials = NewErrorWithCode("ErrorInvalidCredentials", ErrorUnauthorized)
	ErrorUserDisabled       = NewErrorWithCode("ErrorUserDisabled", ErrorForbidden)
	ErrorEmailExists        = NewErrorWithCode("ErrorEmailExists", ErrorConflict)
	ErrorInvalidOldPassword = NewErrorWithCode("ErrorInvalidOldPassword", ErrorBadRequest)
	ErrorWeakPassword       = NewErrorWithCode("ErrorWeakPassword", ErrorBadRequest)
	ErrorInvalidRole        = NewErrorWithCode("ErrorInvalidRole", ErrorBadRequest)
)

// Unit related errors
var (
	ErrorUnitNotFound             = NewErrorWithCode("ErrorUnitNotFound", ErrorNotFound)
	ErrorUnitExists               = NewErrorWithCode("ErrorUnitExists", ErrorConflict)
	ErrorUnitNotAvailable         = NewErrorWithCode("ErrorUnitNotAvailable", ErrorConflict)
	ErrorUnitOccupied             = NewErrorWithCode("ErrorUnitOccupied", ErrorConflict)
	ErrorUnitHasOpenContract      = NewErrorWithCode("ErrorUnitHasOpenContract", ErrorConflict)
	ErrorUnitPermission           = NewErrorWithCode("ErrorUnitPermission", ErrorForbidden)
	ErrorInvalidUnitStatus        = NewErrorWithCode("ErrorInvalidUnitStatus", ErrorBadRequest)
	ErrorUnitStatusManagedByLease = NewErrorWithCode("ErrorUnitStatusManagedByLease", ErrorConflict)
	ErrorInvalidRoomType          = NewErrorWithCode("ErrorInvalidRoomType", ErrorBadRequest)
)

// Tenant related errors
var (
	ErrorTenantNotFound          = NewErrorWithCode("ErrorTenantNotFound", ErrorNotFound)
	ErrorTenantProfileMissing    = NewErrorWithCode("ErrorTenantProfileMissing", ErrorNotFound)
	ErrorTenantExists            = NewErrorWithCode("ErrorTenantExists", ErrorConflict)
	ErrorIdentityCardExists      = NewErrorWithCode("ErrorIdentityCardExists", ErrorConflict)
	ErrorTenantHasActiveContract = NewErrorWithCode("ErrorTenantHasActiveContract", ErrorConflict)
	ErrorTenantAlreadyHoused     = NewErrorWithCode("ErrorTenantAlreadyHoused", ErrorConflict)
	ErrorInvalidTenantStatus     = NewErrorWithCode("ErrorInvalidTenantStatus", ErrorBadRequest)
	ErrorUserNotTenantRole       = NewErrorWithCode("ErrorUserNotTenantRole", ErrorBadRequest)
)

// Contract related errors
var (
	ErrorContractNotFound          = NewErrorWithCode("ErrorContractNotFound", ErrorNotFound)
	ErrorContractPermission        = NewErrorWithCode("ErrorContractPermission", ErrorForbidden)
	ErrorInvalidContractTransition = NewErrorWithCode("ErrorInvalidContractTransition", ErrorConflict)
	ErrorInvalidContractDates      = NewErrorWithCode("ErrorInvalidContractDates", ErrorBadRequest)
	ErrorContractNotActive         = NewErrorWithCode("ErrorContractNotActive", ErrorConflict)
)

// Invoice related errors
var (
	ErrorInvoiceNotFound          = NewErrorWithCode("ErrorInvoiceNotFound", ErrorNotFound)
	ErrorInvoiceExists            = NewErrorWithCode("ErrorInvoiceExists", ErrorConflict)
	ErrorInvalidInvoiceTransition = NewErrorWithCode("ErrorInvalidInvoiceTransition", ErrorConflict)
	ErrorInvalidInvoiceStatus     = NewErrorWithCode("ErrorInvalidInvoiceStatus", ErrorBadRequest)
	ErrorInvalidPeriod            = NewErrorWithCode("ErrorInvalidPeriod", ErrorBadRequest)
	ErrorNegativeAmount           = NewErrorWithCode("ErrorNegativeAmount", ErrorBadRequest)
	ErrorNegativeUsage            = NewErrorWithCode("ErrorNegativeUsage", ErrorBadRequest)
	ErrorInvalidPaymentMethod     = NewErrorWithCode("ErrorInvalidPaymentMethod", ErrorBadRequest)
	ErrorInvoicePaid              = NewErrorWithCode("ErrorInvoicePaid", ErrorConflict)
)

// Maintenance, messaging and notification errors
var (
	ErrorMaintenanceNotFound      = NewErrorWithCode("ErrorMaintenanceNotFound", ErrorNotFound)
	ErrorInvalidMaintenanceStatus = NewErrorWithCode("ErrorInvalidMaintenanceStatus", ErrorBadRequest)
	ErrorInvalidPriority          = NewErrorWithCode("ErrorInvalidPriority", ErrorBadRequest)
	ErrorMessageNotFound          = NewErrorWithCode("ErrorMessageNotFound", ErrorNotFound)
	ErrorReceiverNotFound         = NewErrorWithCode("ErrorReceiverNotFound", ErrorNotFound)
	ErrorNotificationNotFound     = NewErrorWithCode("ErrorNotificationNotFound", ErrorNotFound)
)

// Success messages
const (
	SuccessSignup          = "SuccessSignup"
	SuccessLogin           = "SuccessLogin"
	SuccessUserInfo        = "SuccessUserInfo"
	SuccessPasswordChanged = "SuccessPasswordChanged"

	SuccessUnitCreated = "SuccessUnitCreated"
	SuccessUnitUpdated = "SuccessUnitUpdated"
	SuccessUnitDeleted = "SuccessUnitDeleted"
	SuccessUnitList    = "SuccessUnitList"
	SuccessUnitInfo    = "SuccessUnitInfo"

	SuccessTenantCreated  = "SuccessTenantCreated"
	SuccessTenantUpdated  = "SuccessTenantUpdated"
	SuccessTenantMovedOut = "SuccessTenantMovedOut"
	SuccessTenantDeleted  = "SuccessTenantDeleted"
	SuccessTenantList     = "SuccessTenantList"
	SuccessTenantInfo     = "SuccessTenantInfo"

	SuccessContractCreated    = "SuccessContractCreated"
	SuccessContractSigned     = "SuccessContractSigned"
	SuccessContractTerminated = "SuccessContractTerminated"
	SuccessContractList       = "SuccessContractList"
	SuccessContractInfo       = "SuccessContractInfo"

	SuccessInvoiceCreated       = "SuccessInvoiceCreated"
	SuccessInvoiceStatusUpdated = "SuccessInvoiceStatusUpdated"
	SuccessPaymentConfirmed     = "SuccessPaymentConfirmed"
	SuccessInvoiceDeleted       = "SuccessInvoiceDeleted"
	SuccessInvoiceList          = "SuccessInvoiceList"
	SuccessInvoiceInfo          = "SuccessInvoiceInfo"
	SuccessInvoiceReport        = "SuccessInvoiceReport"
	SuccessPaymentList          = "SuccessPaymentList"

	SuccessMaintenanceCreated = "SuccessMaintenanceCreated"
	SuccessMaintenanceUpdated = "SuccessMaintenanceUpdated"
	SuccessMaintenanceList    = "SuccessMaintenanceList"

	SuccessMessageSent = "SuccessMessageSent"
	SuccessMessageList = "SuccessMessageList"
	SuccessMessageRead = "SuccessMessageRead"
	SuccessUnreadCount = "SuccessUnreadCount"

	SuccessNotificationList    = "SuccessNotificationList"
	SuccessNotificationRead    = "SuccessNotificationRead"
	SuccessNotificationReadAll = "SuccessNotificationReadAll"

	SuccessActivityLogList = "SuccessActivityLogList"
)

// Notification titles, rendered in the default language when persisted
const (
	NotifyContractCreated    = "NotifyContractCreated"
	NotifyContractSigned     = "NotifyContractSigned"
	NotifyContractTerminated = "NotifyContractTerminated"
	NotifyInvoiceIssued      = "NotifyInvoiceIssued"
	NotifyPaymentConfirmed   = "NotifyPaymentConfirmed"
	NotifyMaintenanceUpdated = "NotifyMaintenanceUpdated"
	NotifyNewMessage         = "NotifyNewMessage"
)
