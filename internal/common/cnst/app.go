package cnst

const (
	// AppName is the service name used in logs, metrics and traces
	AppName = "estate-api"
	// CommandName is the root cobra command name
	CommandName = "apiserver"
	// ApiServerYaml is the default configuration file name
	ApiServerYaml = "configs/apiserver.yaml"
)
