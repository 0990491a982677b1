package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host:    "127.0.0.1",
	Port:    "5432",
	User:    "myuser",
	Pass:    "mypassword",
	Name:    "logistics",
	SSLMode: "disable",
}

var defaultKafka = Kafka{
	Topic:   "orders.events",
	GroupID: "logistics-dispatch",
}

var defaultJobs = Jobs{
	OverdueScanSchedule: "@every 1m",
}

var defaultService = Service{
	OperationTimeout: 3 * time.Second,
	ShutdownTimeout:  15 * time.Second,
}

var defaultLog = Log{
	Level: "info",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings. Brokers are empty, which disables the consumer.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultJobs returns the default scheduler settings.
func DefaultJobs() Jobs {
	return defaultJobs
}

// DefaultService returns the default service timeouts.
func DefaultService() Service {
	return defaultService
}

// DefaultLog returns the default logging settings.
func DefaultLog() Log {
	return defaultLog
}
