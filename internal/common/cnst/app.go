package cnst

const (
	AppName    = "phongtro"
	CommandAPI = "phongtro-apiserver"
)
