package service

import "github.com/google/uuid"

// UUIDGenerator генерирует идентификаторы в виде UUID v4
type UUIDGenerator struct{}

// NewUUIDGenerator создает новый генератор идентификаторов
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// GenerateID возвращает случайный UUID в текстовом виде
func (g *UUIDGenerator) GenerateID() string {
	return uuid.NewString()
}
