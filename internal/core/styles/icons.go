package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconVideo   = "\U000F05A0" // 󰖠
	IconComment = "\U000F0188" // 󰆈
	IconReply   = "\U000F045A" // 󰑚
	IconNote    = "\U000F039B" // 󰎛
	IconTag     = ""
	IconSearch  = ""
	IconEye     = ""
)

// Notification icons
var (
	IconNotifyInfo    = ""
	IconNotifyWarning = ""
	IconNotifyError   = ""
)
