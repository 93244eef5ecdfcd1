package cnst

// ActionType names an entry in the activity log
type ActionType string

const (
	ActionSignup            ActionType = "signup"
	ActionLogin             ActionType = "login"
	ActionChangePassword    ActionType = "change_password"
	ActionCreateUnit        ActionType = "create_unit"
	ActionUpdateUnit        ActionType = "update_unit"
	ActionDeleteUnit        ActionType = "delete_unit"
	ActionCreateTenant      ActionType = "create_tenant"
	ActionUpdateTenant      ActionType = "update_tenant"
	ActionMoveOutTenant     ActionType = "move_out_tenant"
	ActionDeleteTenant      ActionType = "delete_tenant"
	ActionCreateContract    ActionType = "create_contract"
	ActionSignContract      ActionType = "sign_contract"
	ActionTerminateContract ActionType = "terminate_contract"
	ActionCreateInvoice     ActionType = "create_invoice"
	ActionUpdateInvoice     ActionType = "update_invoice_status"
	ActionConfirmPayment    ActionType = "confirm_payment"
	ActionDeleteInvoice     ActionType = "delete_invoice"
	ActionCreateMaintenance ActionType = "create_maintenance"
	ActionUpdateMaintenance ActionType = "update_maintenance"
)

func (a ActionType) String() string {
	return string(a)
}

// Entity types referenced by activity log entries and notifications
const (
	EntityUser        = "user"
	EntityUnit        = "unit"
	EntityTenant      = "tenant"
	EntityContract    = "contract"
	EntityInvoice     = "invoice"
	EntityMaintenance = "maintenance"
	EntityMessage     = "message"
)

// Notification types delivered to users
const (
	NotifyTypeContract    = "contract"
	NotifyTypeInvoice     = "invoice"
	NotifyTypePayment     = "payment"
	NotifyTypeMaintenance = "maintenance"
	NotifyTypeMessage     = "message"
)
