package config

// Store describes the outlet printed on receipt headers.
type Store struct {
	Name    string `env:"STORE_NAME" envDefault:"Toko Serbaguna"`
	Address string `env:"STORE_ADDRESS" envDefault:"Jl. Merdeka No. 123"`
	Phone   string `env:"STORE_PHONE" envDefault:"0821-1234-5678"`
}
