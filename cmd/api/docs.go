package main

// @title           Vendas API
// @version         1.0
// @description     API para gestão de vendas: criação, atualização, cancelamento e consulta de vendas e seus itens

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
