package postmark

// Config holds Postmark API credentials and sender identity. The account
// token is only needed for account-level API calls and may be left empty
// for plain transactional sending.
type Config struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN,required"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail  string `env:"SENDER_EMAIL,required"`
	ReplyTo      string `env:"SUPPORT_EMAIL"`
}
