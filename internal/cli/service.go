package cli

import "acopack/internal/app"

func newAppService() app.Service {
	return app.NewService()
}
