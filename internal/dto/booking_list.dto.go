package dto

import "time"

type BookingUserDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	ImageURL string `json:"image_url"`
}

type BookingServiceDTO struct {
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	BarbershopName string  `json:"barbershop_name"`
	BarbershopImg  string  `json:"barbershop_image_url"`
}

// Projeção usada pelo back-office (lista ativa e histórico).
type AdminBookingDTO struct {
	ID      uint              `json:"id"`
	Date    time.Time         `json:"date"`
	Status  string            `json:"status"`
	User    BookingUserDTO    `json:"user"`
	Service BookingServiceDTO `json:"service"`
}

// Projeção usada pela tela "meus agendamentos" do cliente.
type UserBookingDTO struct {
	ID      uint              `json:"id"`
	Date    time.Time         `json:"date"`
	Status  string            `json:"status"`
	Service BookingServiceDTO `json:"service"`
	Address string            `json:"barbershop_address"`
}
