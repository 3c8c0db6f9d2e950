package validator

// Config holds environment driven validator settings.
type Config struct {
	RuleSeparator      string `env:"RULEKIT_RULE_SEPARATOR" envDefault:"|"`
	RuleParamSeparator string `env:"RULEKIT_RULE_PARAM_SEPARATOR" envDefault:":"`
	ParamsSeparator    string `env:"RULEKIT_PARAMS_SEPARATOR" envDefault:","`
	DefaultMessage     string `env:"RULEKIT_DEFAULT_MESSAGE" envDefault:"Incorrect Value"`
	MessagesFile       string `env:"RULEKIT_MESSAGES_FILE"`
}
