package builder

// Log messages
const (
	LogMsgUnknownRarity      = "Unknown rarity tier, skipping"
	LogMsgUnknownModifier    = "Unknown modifier, skipping"
	LogMsgMalformedModelRef  = "Malformed model reference, skipping"
	LogMsgPlaceholderFailed  = "Placeholder substitution failed, keeping original lore line"
	LogMsgProfileFetchFailed = "Owner profile fetch failed, continuing with incomplete profile"
	LogMsgNoProfileProvider  = "No profile provider configured, skipping owner visuals"
)
