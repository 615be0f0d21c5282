package application

const (
	helpReply = "**Claude Code Bridge (Webex)**\n\n" +
		"Commands:\n" +
		"- `/sessions` - List recent sessions\n" +
		"- `/connect N` - Connect to session N from the list\n" +
		"- `/disconnect` - Disconnect from session\n" +
		"- `/status` - Show connection status\n" +
		"- `/safe` - Toggle permission mode\n\n" +
		"Connect to a session, then send messages to interact with Claude Code."

	unknownCommandReply = "Unknown command: `%s`\nUse `/help` for available commands."
	noSessionsReply     = "No recent sessions found."

	connectUsageReply      = "Usage: `/connect N` (run `/sessions` first)"
	connectInvalidReply    = "Invalid number. Usage: `/connect N`"
	connectNoListReply     = "No session list cached. Run `/sessions` first."
	connectOutOfRangeReply = "Out of range. Pick a number between 1 and %d."
	connectGoneReply       = "Session not found. It may have been deleted. Run `/sessions` again."
	connectedReply         = "**Connected to:** %s\n**Project:** %s\n**Working dir:** %s\n**Mode:** %s\n\n" +
		"Send a message to interact with this session."

	notConnectedDisconnectReply = "Not connected to any session."
	disconnectedReply           = "Disconnected from: %s"

	statusDisconnected = "Not connected"
	statusConnected    = "**Connected to:** %s\n**Session ID:** %s\n**Working dir:** %s"
	statusModeLine     = "%s\n**Mode:** %s"

	skipPermissionsReply = "**Mode: skip-permissions**\n" +
		"Claude will execute tools without asking for approval."
	safeModeReply = "**Mode: safe**\n" +
		"WARNING: In --print mode, Claude cannot prompt for interactive permission " +
		"approval. Commands requiring approval may cause the CLI to hang. " +
		"Use `/safe` again to switch back if this happens."

	notConnectedTurnReply = "Not connected. Use `/sessions` to pick a session."
	busyReply             = "Still processing the previous message. Please wait."
	placeholderReply      = "Thinking..."
	genericErrorReply     = "An error occurred while processing your message. Check the bot logs for details."
)
