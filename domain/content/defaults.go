package content

import "github.com/google/uuid"

// DefaultSiteContent is the document persisted on first access. Copy in
// the site's language, all sections visible, geo-targeting on.
func DefaultSiteContent() *SiteContent {
	return &SiteContent{
		SiteTitle:     "Codigo R",
		HeroTitle:     "DOMINE O MERCADO CRIPTO",
		HeroSubtitle:  "O Setup Completo que Transformou Minha Vida no Trading",
		HeroCTAText:   "QUERO COMEÇAR AGORA",
		FeaturesTitle: "O Que Você Vai Aprender",
		Features: []Feature{
			{Icon: "⚙️", Title: "Setup Completo", Description: "Configuração passo a passo de todas as ferramentas necessárias para operar com sucesso"},
			{Icon: "📈", Title: "Estratégias Rentáveis", Description: "Métodos testados e aprovados que uso diariamente para gerar lucros consistentes"},
			{Icon: "🛡️", Title: "Gestão de Risco", Description: "Aprenda a proteger seu capital e nunca mais perder dinheiro por emocional"},
			{Icon: "📊", Title: "Análise Técnica", Description: "Domine os indicadores mais importantes para tomar decisões certeiras"},
			{Icon: "🤖", Title: "Automação", Description: "Configure bots e alertas para nunca perder uma oportunidade de lucro"},
			{Icon: "🧠", Title: "Mindset Vencedor", Description: "Desenvolva a mentalidade necessária para ser um trader profissional"},
		},
		TestimonialsTitle: "O Que Dizem Nossos Alunos",
		Testimonials:      []Testimonial{},
		PricingTitle:      "Garanta Seu Acesso Agora",
		Price:             197,
		OriginalPrice:     497,
		BuyButtons:        []BuyButton{},
		ProofsTitle:       "Provas de Ganhos Reais",
		ProofsSubtitle:    "Resultados comprovados do método Codigo R",
		ProofsOfGains:     []ProofOfGains{},
		FooterText:        "© Codigo R. Todos os direitos reservados.",
		Sections:          DefaultSections(),
		VSLConfig: VSLConfig{
			Enabled:  true,
			Title:    "Assista ao Vídeo e Descubra Como Ganhar Consistentemente",
			Subtitle: "O método completo revelado em detalhes",
			CTAText:  "QUERO O MÉTODO COMPLETO",
		},
		FunnelConfig: FunnelConfig{
			Steps: []FunnelStep{
				{ID: uuid.New().String(), Title: "Assista ao vídeo", Description: "Entenda o método antes de comprar", Enabled: true, Order: 1},
				{ID: uuid.New().String(), Title: "Garanta seu acesso", Description: "Escolha a plataforma de pagamento", Enabled: true, Order: 2},
				{ID: uuid.New().String(), Title: "Comece a operar", Description: "Acesso imediato ao conteúdo completo", Enabled: true, Order: 3},
			},
		},
		GeoTargetingEnabled: true,
		DefaultPlatform:     "hotmart",
		GeoPlatformMappings: DefaultGeoPlatformMappings(),
		PlatformConfigs:     DefaultPlatformConfigs(),
	}
}

// DefaultSections has every toggle on.
func DefaultSections() Sections {
	return Sections{
		Header:       true,
		Hero:         true,
		VSL:          true,
		Features:     true,
		Testimonials: true,
		Pricing:      true,
		FAQ:          true,
		Footer:       true,
	}
}

func DefaultGeoPlatformMappings() []GeoPlatformMapping {
	mappings := []GeoPlatformMapping{
		{CountryCode: "BR", CountryName: "Brasil", PrimaryPlatform: "hotmart", BackupPlatforms: []string{"monetizze"}, Enabled: true},
		{CountryCode: "US", CountryName: "Estados Unidos", PrimaryPlatform: "clickbank", BackupPlatforms: []string{"hotmart"}, Enabled: true},
		{CountryCode: "CA", CountryName: "Canadá", PrimaryPlatform: "clickbank", BackupPlatforms: []string{"hotmart"}, Enabled: true},
		{CountryCode: "GB", CountryName: "Reino Unido", PrimaryPlatform: "clickbank", BackupPlatforms: []string{"hotmart"}, Enabled: true},
		{CountryCode: "AU", CountryName: "Austrália", PrimaryPlatform: "clickbank", BackupPlatforms: []string{"hotmart"}, Enabled: true},
		{CountryCode: "DE", CountryName: "Alemanha", PrimaryPlatform: "clickbank", BackupPlatforms: []string{"hotmart"}, Enabled: true},
		{CountryCode: "FR", CountryName: "França", PrimaryPlatform: "clickbank", BackupPlatforms: []string{"hotmart"}, Enabled: true},
		{CountryCode: "IT", CountryName: "Itália", PrimaryPlatform: "clickbank", BackupPlatforms: []string{"hotmart"}, Enabled: true},
		{CountryCode: "ES", CountryName: "Espanha", PrimaryPlatform: "clickbank", BackupPlatforms: []string{"hotmart"}, Enabled: true},
		{CountryCode: "PT", CountryName: "Portugal", PrimaryPlatform: "hotmart", BackupPlatforms: []string{"clickbank"}, Enabled: true},
		{CountryCode: "MX", CountryName: "México", PrimaryPlatform: "hotmart", BackupPlatforms: []string{"clickbank"}, Enabled: true},
		{CountryCode: "AR", CountryName: "Argentina", PrimaryPlatform: "hotmart", BackupPlatforms: []string{"clickbank"}, Enabled: true},
	}
	for i := range mappings {
		mappings[i].ID = uuid.New().String()
	}
	return mappings
}

func DefaultPlatformConfigs() []PlatformConfig {
	return []PlatformConfig{
		{
			PlatformName:       "hotmart",
			DisplayName:        "Hotmart",
			BaseURL:            "https://pay.hotmart.com",
			CommissionRate:     70,
			SupportedCountries: []string{"BR", "PT", "MX", "AR", "CL", "CO", "PE"},
			PaymentMethods:     []string{"Pix", "Cartão", "Boleto"},
			Enabled:            true,
		},
		{
			PlatformName:       "clickbank",
			DisplayName:        "ClickBank",
			BaseURL:            "https://www.clickbank.com",
			CommissionRate:     75,
			SupportedCountries: []string{"US", "CA", "GB", "AU", "NZ", "DE", "FR", "IT", "ES"},
			PaymentMethods:     []string{"PayPal", "Credit Card"},
			Enabled:            true,
		},
		{
			PlatformName:       "monetizze",
			DisplayName:        "Monetizze",
			BaseURL:            "https://app.monetizze.com.br",
			CommissionRate:     60,
			SupportedCountries: []string{"BR"},
			PaymentMethods:     []string{"Pix", "Cartão", "Boleto"},
			Enabled:            true,
		},
	}
}
