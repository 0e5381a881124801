package util

var (
	version = "develop"
)

func GetVersion() string {
	return version
}
