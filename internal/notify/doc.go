package notify

// Package notify sends best-effort desktop notifications. A Gateway asks the
// host Channel for permission, prompts when it is missing and reports every
// attempt as a Result instead of an error. FyneChannel is the desktop
// Channel; Dispatcher announces finished conversions.
