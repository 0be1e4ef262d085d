package smtp

// Config holds SMTP server settings. Host and sender address are required;
// credentials may be omitted for unauthenticated relays.
type Config struct {
	Host        string `env:"SMTP_HOST,required"`
	Port        int    `env:"SMTP_PORT" envDefault:"587"`
	Username    string `env:"SMTP_USERNAME"`
	Password    string `env:"SMTP_PASSWORD"`
	TLSMode     string `env:"SMTP_TLS_MODE" envDefault:"starttls"` // starttls, tls, or plain
	SenderEmail string `env:"SENDER_EMAIL,required"`
	ReplyTo     string `env:"SUPPORT_EMAIL"`
}
