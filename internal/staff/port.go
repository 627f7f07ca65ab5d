package staff

import "carebase-api/internal/logs"

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ LogServicePort = (*logs.LogService)(nil)
