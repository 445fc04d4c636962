package logging

// Message ids. The first segment selects the sink, see ParseSeverity.
const (
	MsgInvocationStarted  = "info.ChangeStatus.00001"
	MsgInvocationFinished = "info.ChangeStatus.00002"
	MsgPropertiesLoaded   = "info.ChangeStatus.00003"
	MsgStatementFailed    = "error.ChangeStatus.00004"
	MsgSecretLoaded       = "info.ChangeStatus.00005"
	MsgStatementExecuted  = "info.ChangeStatus.00006"
	MsgUnknownStatus      = "warn.ChangeStatus.00007"
	MsgConnectFailed      = "error.ChangeStatus.00008"
	MsgPropertiesFailed   = "error.ChangeStatus.00009"
	MsgSecretFailed       = "error.ChangeStatus.00010"
	MsgInvalidEvent       = "error.ChangeStatus.00011"
)

// Templates use {0} for the message id and {1}.. for caller parameters.
var defaultCatalog = map[string]string{
	MsgInvocationStarted:  "[{0}] status change started. zipFileName={1} infraCompanyId={2} adjustStatus={3}",
	MsgInvocationFinished: "[{0}] status change finished. zipFileName={1}",
	MsgPropertiesLoaded:   "[{0}] properties loaded. secretName={1} region={2}",
	MsgStatementFailed:    "[{0}] {1} failed. statement={2} detail={3}",
	MsgSecretLoaded:       "[{0}] secret store read. secretName={1}",
	MsgStatementExecuted:  "[{0}] {1} succeeded. statement={2}",
	MsgUnknownStatus:      "[{0}] unknown adjust status {1}, recording as given",
	MsgConnectFailed:      "[{0}] database connection failed. detail={1}",
	MsgPropertiesFailed:   "[{0}] failed to read properties file. detail={1}",
	MsgSecretFailed:       "[{0}] failed to read secret store. detail={1}",
	MsgInvalidEvent:       "[{0}] invalid invocation event. detail={1}",
}
