package domain

// PermissionMode controls whether the backend may run tools unattended.
type PermissionMode int

const (
	PermissionModeSafe PermissionMode = iota
	PermissionModeSkipPermissions
)

func (m PermissionMode) String() string {
	if m == PermissionModeSkipPermissions {
		return "skip-permissions"
	}
	return "safe"
}

func (m PermissionMode) SkipsPermissions() bool {
	return m == PermissionModeSkipPermissions
}

func (m PermissionMode) Toggle() PermissionMode {
	if m == PermissionModeSkipPermissions {
		return PermissionModeSafe
	}
	return PermissionModeSkipPermissions
}

// Conversation is the per-room state: the bound session, the last listing
// offered to the user and the single-flight flag.
type Conversation struct {
	RoomID       string
	SessionID    string
	SessionCWD   string
	SessionLabel string
	Mode         PermissionMode
	SessionList  []Session
	Busy         bool
}

func (c Conversation) Connected() bool {
	return c.SessionID != ""
}
