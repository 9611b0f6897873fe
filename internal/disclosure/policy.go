package disclosure

import "esgledger/internal/audit"

// auditPolicy is the explicit audit-worthiness table: which actions on
// which entity kinds reach the ledger. The policy belongs to this
// collaborator, not to the ledger - the trail itself never rejects an
// entry. Keeping the table in one place makes the choice reviewable
// instead of scattering it across call sites.
var auditPolicy = map[string]map[audit.Action]bool{
	KindPeriod: {
		audit.ActionCreate:   true,
		audit.ActionUpdate:   true,
		audit.ActionRollover: true,
	},
	KindSection: {
		audit.ActionCreate:   true,
		audit.ActionUpdate:   true,
		audit.ActionRollover: true,
	},
	KindDataPoint: {
		audit.ActionCreate: true,
		audit.ActionUpdate: true,
	},
	KindDecision: {
		audit.ActionCreate: true,
		audit.ActionUpdate: true,
	},
}

// auditWorthy reports whether the action on the kind is recorded.
func auditWorthy(kind string, action audit.Action) bool {
	actions, ok := auditPolicy[kind]
	if !ok {
		return false
	}
	return actions[action]
}
