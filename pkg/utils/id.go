package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Só minúsculas e dígitos: o ID vira parte do nome do diretório da exportação
const runIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const runIDLength = 8

// GenerateRunID gera o identificador curto de uma execução de exportação
func GenerateRunID() (string, error) {
	return gonanoid.Generate(runIDAlphabet, runIDLength)
}
