package petservice

// Dog карточка собаки из PetService
// Адрес владельца используется только для определения сектора и не сохраняется
// в моделях движка расписания
type Dog struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Breed        string `json:"breed"`
	OwnerID      int64  `json:"owner_id"`
	OwnerName    string `json:"owner_name"`
	OwnerAddress string `json:"owner_address"`
	// Sector сектор города, вычисленный PetService по адресу владельца
	Sector string `json:"sector"`
	Active bool   `json:"active"`
}

// ErrorResponse модель ошибки от PetService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
