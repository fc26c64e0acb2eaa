// ABOUTME: Static reference tables for Loja de Ferragens Ralph.
// ABOUTME: Customers, products, suppliers, team, and recurring task templates.

package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var customers = []string{
	"João Silva", "Maria Santos", "António Ferreira", "Ana Costa", "Manuel Oliveira",
	"Teresa Rodrigues", "Carlos Almeida", "Isabel Pereira", "Francisco Sousa", "Luísa Martins",
	"Pedro Gonçalves", "Helena Fernandes", "Rui Lopes", "Beatriz Ribeiro", "José Mendes",
	"Catarina Gomes", "Miguel Carvalho", "Sara Teixeira", "Tiago Marques", "Inês Correia",
	"Nuno Pinto", "Sofia Cardoso", "André Moreira", "Rita Araújo", "Filipe Nunes",
	"Marta Vieira", "Paulo Monteiro", "Cláudia Duarte", "Bruno Barbosa", "Joana Cunha",
	"Ricardo Matos", "Patrícia Reis", "Diogo Tavares", "Raquel Lourenço", "Sérgio Fonseca",
	"Vera Machado", "Daniel Coelho", "Lúcia Rocha", "Hugo Azevedo", "Susana Borges",
	"Empresa MegaConstruções Lda.", "Construções Silva & Filhos", "Encanamentos Rápidos Lda.",
	"Electricista Pinto", "Pinturas Modernas Lda.", "Carpintaria São José",
	"Empreiteira do Norte S.A.", "Obras & Reformas Lda.", "Serralharia Central",
	"Imobiliária Atlântico", "Condomínio Bela Vista", "Junta de Freguesia Local",
	"Câmara Municipal", "Hotel Praia Azul", "Restaurante O Marinheiro",
}

var products = []Product{
	// Ferramentas manuais
	{Name: "Martelo de Carpinteiro 500g", SKU: "FER-001", Price: price("12.90"), Category: "ferramentas", MinQuantity: 15},
	{Name: "Chave de Fendas Phillips PH2", SKU: "FER-002", Price: price("4.50"), Category: "ferramentas", MinQuantity: 25},
	{Name: "Alicate Universal 200mm", SKU: "FER-003", Price: price("8.90"), Category: "ferramentas", MinQuantity: 12},
	{Name: "Chave Inglesa Ajustável 250mm", SKU: "FER-004", Price: price("14.50"), Category: "ferramentas", MinQuantity: 10},
	{Name: "Serrote Manual 500mm", SKU: "FER-005", Price: price("11.90"), Category: "ferramentas", MinQuantity: 8},
	{Name: "Fita Métrica 5m", SKU: "FER-006", Price: price("6.90"), Category: "ferramentas", MinQuantity: 20},
	{Name: "Nível de Bolha 60cm", SKU: "FER-007", Price: price("9.50"), Category: "ferramentas", MinQuantity: 10},
	{Name: "Conjunto Chaves Allen 9pcs", SKU: "FER-008", Price: price("7.90"), Category: "ferramentas", MinQuantity: 15},
	{Name: "Esquadro Metálico 300mm", SKU: "FER-009", Price: price("5.50"), Category: "ferramentas", MinQuantity: 10},
	{Name: "X-ato Profissional", SKU: "FER-010", Price: price("3.90"), Category: "ferramentas", MinQuantity: 20},
	// Ferramentas elétricas
	{Name: "Berbequim Aparafusador 18V", SKU: "ELE-001", Price: price("89.90"), Category: "eletrica", MinQuantity: 5},
	{Name: "Rebarbadora 125mm 750W", SKU: "ELE-002", Price: price("49.90"), Category: "eletrica", MinQuantity: 4},
	{Name: "Serra Circular 185mm", SKU: "ELE-003", Price: price("79.90"), Category: "eletrica", MinQuantity: 3},
	{Name: "Lixadora Orbital 240W", SKU: "ELE-004", Price: price("39.90"), Category: "eletrica", MinQuantity: 4},
	{Name: "Pistola de Calor 2000W", SKU: "ELE-005", Price: price("34.90"), Category: "eletrica", MinQuantity: 3},
	// Tintas e acabamentos
	{Name: "Tinta Plástica Branca 15L", SKU: "TIN-001", Price: price("42.90"), Category: "tintas", MinQuantity: 10},
	{Name: "Tinta Plástica Branca 5L", SKU: "TIN-002", Price: price("18.90"), Category: "tintas", MinQuantity: 15},
	{Name: "Esmalte Sintético 0.75L", SKU: "TIN-003", Price: price("12.50"), Category: "tintas", MinQuantity: 12},
	{Name: "Primário Aderente 5L", SKU: "TIN-004", Price: price("24.90"), Category: "tintas", MinQuantity: 8},
	{Name: "Verniz Marítimo 0.75L", SKU: "TIN-005", Price: price("15.90"), Category: "tintas", MinQuantity: 10},
	{Name: "Rolo de Pintura 220mm", SKU: "TIN-006", Price: price("4.90"), Category: "tintas", MinQuantity: 25},
	{Name: "Trincha Plana 70mm", SKU: "TIN-007", Price: price("3.50"), Category: "tintas", MinQuantity: 20},
	{Name: "Fita de Mascarar 50m", SKU: "TIN-008", Price: price("2.90"), Category: "tintas", MinQuantity: 30},
	{Name: "Diluente Celuloso 1L", SKU: "TIN-009", Price: price("5.90"), Category: "tintas", MinQuantity: 15},
	{Name: "Massa de Reparação 1kg", SKU: "TIN-010", Price: price("6.50"), Category: "tintas", MinQuantity: 15},
	// Canalização
	{Name: "Tubo PVC 50mm 3m", SKU: "CAN-001", Price: price("8.90"), Category: "canalizacao", MinQuantity: 15},
	{Name: "Tubo PVC 110mm 3m", SKU: "CAN-002", Price: price("14.90"), Category: "canalizacao", MinQuantity: 10},
	{Name: "Torneira Lavatório Monocomando", SKU: "CAN-003", Price: price("29.90"), Category: "canalizacao", MinQuantity: 6},
	{Name: "Sifão Lavatório Cromado", SKU: "CAN-004", Price: price("7.50"), Category: "canalizacao", MinQuantity: 10},
	{Name: "Vedante Teflon 12m", SKU: "CAN-005", Price: price("1.90"), Category: "canalizacao", MinQuantity: 40},
	{Name: "Cola PVC 250ml", SKU: "CAN-006", Price: price("6.90"), Category: "canalizacao", MinQuantity: 15},
	{Name: "Joelho PVC 90° 50mm", SKU: "CAN-007", Price: price("1.50"), Category: "canalizacao", MinQuantity: 30},
	{Name: "Válvula de Esfera 1/2\"", SKU: "CAN-008", Price: price("8.90"), Category: "canalizacao", MinQuantity: 12},
	// Eletricidade
	{Name: "Cabo Elétrico H05VV 3x1.5 100m", SKU: "ELC-001", Price: price("45.90"), Category: "eletricidade", MinQuantity: 5},
	{Name: "Cabo Elétrico H05VV 3x2.5 100m", SKU: "ELC-002", Price: price("69.90"), Category: "eletricidade", MinQuantity: 4},
	{Name: "Tomada Dupla Encastrar", SKU: "ELC-003", Price: price("5.90"), Category: "eletricidade", MinQuantity: 20},
	{Name: "Interruptor Simples Encastrar", SKU: "ELC-004", Price: price("4.50"), Category: "eletricidade", MinQuantity: 20},
	{Name: "Quadro Elétrico 12 Módulos", SKU: "ELC-005", Price: price("18.90"), Category: "eletricidade", MinQuantity: 5},
	{Name: "Disjuntor 16A", SKU: "ELC-006", Price: price("8.90"), Category: "eletricidade", MinQuantity: 15},
	{Name: "Lâmpada LED E27 10W", SKU: "ELC-007", Price: price("3.90"), Category: "eletricidade", MinQuantity: 30},
	{Name: "Fita Isoladora Preta 20m", SKU: "ELC-008", Price: price("1.90"), Category: "eletricidade", MinQuantity: 30},
	// Construção
	{Name: "Cimento Portland 25kg", SKU: "CON-001", Price: price("5.90"), Category: "construcao", MinQuantity: 20},
	{Name: "Argamassa Cola 25kg", SKU: "CON-002", Price: price("7.90"), Category: "construcao", MinQuantity: 15},
	{Name: "Betumadeira Inox 200mm", SKU: "CON-003", Price: price("6.90"), Category: "construcao", MinQuantity: 10},
	{Name: "Balde Pedreiro 12L", SKU: "CON-004", Price: price("4.50"), Category: "construcao", MinQuantity: 10},
	{Name: "Colher de Pedreiro 200mm", SKU: "CON-005", Price: price("5.90"), Category: "construcao", MinQuantity: 10},
	{Name: "Reboco Projetável 25kg", SKU: "CON-006", Price: price("9.90"), Category: "construcao", MinQuantity: 10},
	// Fixação e parafusaria
	{Name: "Parafusos Madeira 4x40 cx200", SKU: "FIX-001", Price: price("5.90"), Category: "fixacao", MinQuantity: 20},
	{Name: "Parafusos Madeira 5x60 cx100", SKU: "FIX-002", Price: price("6.50"), Category: "fixacao", MinQuantity: 20},
	{Name: "Buchas Nylon 8mm cx100", SKU: "FIX-003", Price: price("4.90"), Category: "fixacao", MinQuantity: 25},
	{Name: "Pregos Aço 50mm 1kg", SKU: "FIX-004", Price: price("3.90"), Category: "fixacao", MinQuantity: 15},
	{Name: "Silicone Transparente 280ml", SKU: "FIX-005", Price: price("5.50"), Category: "fixacao", MinQuantity: 20},
	{Name: "Espuma Poliuretano 750ml", SKU: "FIX-006", Price: price("7.90"), Category: "fixacao", MinQuantity: 12},
	{Name: "Fita Adesiva Dupla Face 19mm", SKU: "FIX-007", Price: price("4.50"), Category: "fixacao", MinQuantity: 15},
	{Name: "Abraçadeiras Plástico cx100", SKU: "FIX-008", Price: price("3.50"), Category: "fixacao", MinQuantity: 20},
	// Segurança e EPI
	{Name: "Luvas de Trabalho Couro", SKU: "SEG-001", Price: price("6.90"), Category: "seguranca", MinQuantity: 15},
	{Name: "Óculos de Proteção", SKU: "SEG-002", Price: price("4.50"), Category: "seguranca", MinQuantity: 12},
	{Name: "Máscara Anti-Poeira FFP2 cx10", SKU: "SEG-003", Price: price("8.90"), Category: "seguranca", MinQuantity: 15},
	{Name: "Capacete de Obra Branco", SKU: "SEG-004", Price: price("7.90"), Category: "seguranca", MinQuantity: 8},
	{Name: "Botas de Segurança S3 nº42", SKU: "SEG-005", Price: price("39.90"), Category: "seguranca", MinQuantity: 4},
	// Jardim
	{Name: "Mangueira 25m 1/2\"", SKU: "JAR-001", Price: price("19.90"), Category: "jardim", MinQuantity: 6},
	{Name: "Tesoura de Poda", SKU: "JAR-002", Price: price("9.90"), Category: "jardim", MinQuantity: 8},
	{Name: "Pá de Jardim", SKU: "JAR-003", Price: price("12.90"), Category: "jardim", MinQuantity: 6},
	{Name: "Luvas de Jardim", SKU: "JAR-004", Price: price("4.90"), Category: "jardim", MinQuantity: 10},
	{Name: "Adubo Universal 5kg", SKU: "JAR-005", Price: price("8.90"), Category: "jardim", MinQuantity: 10},
}

var suppliers = []string{
	"Wurth Portugal", "Stanley Black & Decker", "Bosch Portugal",
	"CIN Tintas", "Robbialac", "Barbot",
	"Tigre Portugal", "Geberit", "Grohe",
	"Legrand", "Schneider Electric", "Philips Iluminação",
	"Secil", "Cimpor", "Weber Saint-Gobain",
	"Fischer Portugal", "Hilti Portugal", "Sika Portugal",
	"3M Portugal", "Bellota", "Bahco",
	"Gardena", "Husqvarna", "STIHL Portugal",
}

var categorySuppliers = map[string][]string{
	"ferramentas":  {"Wurth Portugal", "Stanley Black & Decker", "Bahco", "Bellota"},
	"eletrica":     {"Bosch Portugal", "Stanley Black & Decker", "Hilti Portugal"},
	"tintas":       {"CIN Tintas", "Robbialac", "Barbot"},
	"canalizacao":  {"Tigre Portugal", "Geberit", "Grohe"},
	"eletricidade": {"Legrand", "Schneider Electric", "Philips Iluminação"},
	"construcao":   {"Secil", "Cimpor", "Weber Saint-Gobain", "Sika Portugal"},
	"fixacao":      {"Fischer Portugal", "Hilti Portugal", "Sika Portugal", "Wurth Portugal", "3M Portugal"},
	"seguranca":    {"3M Portugal", "Wurth Portugal"},
	"jardim":       {"Gardena", "Husqvarna", "STIHL Portugal", "Bellota"},
}

var team = []TeamMember{
	{Name: "Ralph Medeiros", Role: RoleOwner},
	{Name: "Carla Figueiredo", Role: "Subgerente"},
	{Name: "Bruno Tavares", Role: "Vendedor Sénior"},
	{Name: "Ana Beatriz Sousa", Role: "Vendedora"},
	{Name: "Tiago Mendes", Role: "Vendedor"},
	{Name: "Sérgio Pinto", Role: "Armazém / Stock"},
	{Name: "Marta Coelho", Role: "Caixa / Atendimento"},
	{Name: "Fernando Lopes", Role: RoleDriver},
}

var taskTemplates = []TaskTemplate{
	{Description: "Verificar stock mínimo e fazer encomendas", Assignee: "Sérgio Pinto", Priority: PriorityHigh},
	{Description: "Organizar montra da loja", Assignee: "Ana Beatriz Sousa", Priority: PriorityMedium},
	{Description: "Limpar e arrumar armazém", Assignee: "Sérgio Pinto", Priority: PriorityMedium},
	{Description: "Atualizar preços no sistema", Assignee: "Carla Figueiredo", Priority: PriorityHigh},
	{Description: "Verificar prazos de validade (tintas/colas)", Assignee: "Sérgio Pinto", Priority: PriorityMedium},
	{Description: "Conferir caixa do dia", Assignee: "Marta Coelho", Priority: PriorityHigh},
	{Description: "Responder a orçamentos pendentes", Assignee: "Bruno Tavares", Priority: PriorityHigh},
	{Description: "Contactar fornecedores para reposição", Assignee: "Carla Figueiredo", Priority: PriorityHigh},
	{Description: "Preparar encomendas para entrega", Assignee: "Fernando Lopes", Priority: PriorityHigh},
	{Description: "Fazer inventário da secção de tintas", Assignee: "Sérgio Pinto", Priority: PriorityMedium},
	{Description: "Rever catálogo de promoções", Assignee: "Carla Figueiredo", Priority: PriorityMedium},
	{Description: "Atualizar redes sociais da loja", Assignee: "Ana Beatriz Sousa", Priority: PriorityLow},
	{Description: "Treinar novo colaborador na secção elétrica", Assignee: "Bruno Tavares", Priority: PriorityMedium},
	{Description: "Verificar equipamento de segurança da loja", Assignee: "Ralph Medeiros", Priority: PriorityHigh},
	{Description: "Contactar cliente sobre encomenda especial", Assignee: "Bruno Tavares", Priority: PriorityHigh},
	{Description: "Organizar secção de canalização", Assignee: "Tiago Mendes", Priority: PriorityMedium},
	{Description: "Fazer balanço mensal de vendas", Assignee: "Ralph Medeiros", Priority: PriorityHigh},
	{Description: "Preparar campanha de Natal", Assignee: "Carla Figueiredo", Priority: PriorityHigh},
	{Description: "Rever contrato com fornecedor Wurth", Assignee: "Ralph Medeiros", Priority: PriorityMedium},
	{Description: "Reparar prateleira danificada corredor 3", Assignee: "Sérgio Pinto", Priority: PriorityLow},
	{Description: "Calibrar balança de pesagem", Assignee: "Sérgio Pinto", Priority: PriorityLow},
	{Description: "Substituir iluminação secção jardim", Assignee: "Tiago Mendes", Priority: PriorityMedium},
	{Description: "Encomendar sacos para clientes", Assignee: "Marta Coelho", Priority: PriorityLow},
	{Description: "Verificar sistema de alarme", Assignee: "Ralph Medeiros", Priority: PriorityHigh},
	{Description: "Atualizar website com novos produtos", Assignee: "Ana Beatriz Sousa", Priority: PriorityMedium},
	{Description: "Recolher devoluções de clientes", Assignee: "Marta Coelho", Priority: PriorityMedium},
	{Description: "Preparar orçamento para Câmara Municipal", Assignee: "Bruno Tavares", Priority: PriorityHigh},
	{Description: "Reorganizar corredor de ferramentas elétricas", Assignee: "Tiago Mendes", Priority: PriorityMedium},
	{Description: "Fazer limpeza geral da loja", Assignee: "Sérgio Pinto", Priority: PriorityLow},
	{Description: "Contactar seguradora sobre renovação", Assignee: "Ralph Medeiros", Priority: PriorityMedium},
}
