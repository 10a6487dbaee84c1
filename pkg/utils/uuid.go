package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para correlação de logs
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateEntityID gera o identificador de uma linha persistida. Mais longo
// que o de correlação para reduzir a chance de colisão entre milhares de
// vendas e lançamentos.
func GenerateEntityID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
