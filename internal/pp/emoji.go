package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars    Emoji = "📖" // reading configuration
	EmojiConfig     Emoji = "🔧" // showing configuration
	EmojiInternet   Emoji = "🌐" // network address detection
	EmojiPrivileges Emoji = "🥷" // /privileges
	EmojiMute       Emoji = "🔇" // quiet mode
	EmojiDisabled   Emoji = "🚫" // feature is disabled

	EmojiLogin        Emoji = "🔑" // logging into the DNS provider
	EmojiUpdateRecord Emoji = "📡" // updating DNS records
	EmojiCache        Emoji = "💾" // reading or writing the address cache

	EmojiPing         Emoji = "🔔" // pinging and health checks
	EmojiNotification Emoji = "📨" // notifications

	EmojiSignal      Emoji = "🚨" // catching signals
	EmojiAlreadyDone Emoji = "🤷" // DNS records were already up to date
	EmojiNew         Emoji = "🆕" // a changed address was detected
	EmojiBye         Emoji = "👋" // bye!

	EmojiGood        Emoji = "😊" // good news
	EmojiUserError   Emoji = "😡" // configuration mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible configuration mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiWarning     Emoji = "😐" // warnings about something unusual
	EmojiImpossible  Emoji = "🤯" // the impossible happened
	EmojiHint        Emoji = "💡" // Hints
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
