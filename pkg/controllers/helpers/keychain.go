package helpers

import "github.com/zalando/go-keyring"

const serviceName = "lazyftp"

// Tokens are stored per API base URL so several backends can coexist.

func GetToken(baseURL string) (string, error) {
	return keyring.Get(serviceName, baseURL)
}

func SetToken(baseURL, token string) error {
	return keyring.Set(serviceName, baseURL, token)
}

func DeleteToken(baseURL string) error {
	return keyring.Delete(serviceName, baseURL)
}
