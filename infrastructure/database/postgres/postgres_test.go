package postgres

// Connection precisa continuar satisfazendo a interface consumida pelos
// repositórios
var _ Conn = (*Connection)(nil)
