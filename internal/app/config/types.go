package config

type (
	InternalConfig struct {
		App        App
		JWT        JWT
		SMSGateway SMSGateway
		Alerts     Alerts
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		AllowedOrigins             string
		MaxRequests                int
		ShutdownTimeoutInSeconds   int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
	}

	JWT struct {
		Secret string
	}

	SMSGateway struct {
		BaseUrl              string
		TimeoutInSeconds     int
		MaxRequestsPerSecond int
	}

	Alerts struct {
		QueueName string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
