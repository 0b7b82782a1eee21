package http

import "github.com/go-playground/validator/v10"

// validate instancia compartida de go-playground/validator para los handlers.
// La instancia cachea metadatos por struct, así que debe ser única.
var validate = validator.New()
