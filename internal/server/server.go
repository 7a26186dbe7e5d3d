package server

// Server объединяет HTTP сервера отдельных сущностей.
type Server struct {
	StrengthServer
}

func NewServer(
	strengthServer StrengthServer,
) Server {
	return Server{
		StrengthServer: strengthServer,
	}
}
