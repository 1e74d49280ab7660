// Package vsmenu is the navigation configuration of the VSmenu 2.0 documentation portal
// (pt-BR), published on GitHub Pages under /vsmenu-docs/.
package vsmenu

import "git.home.luguber.info/inful/docnav/internal/nav"

// Base is the GitHub Pages project path. A custom domain (docs.vsmenu.io) serves from "/".
const Base = "/vsmenu-docs/"

func open() *bool   { b := false; return &b }
func closed() *bool { b := true; return &b }

func link(text, href string) *nav.Item { return &nav.Item{Text: text, Link: href} }

// Spec returns a fresh copy of the portal configuration.
func Spec() nav.Spec {
	return nav.Spec{
		Site: nav.Site{
			Title:       "VSmenu Docs",
			Description: "Documentação completa do sistema VSmenu 2.0",
			Lang:        "pt-BR",
			BaseURL:     Base,
			Logo:        "/images/vsmenu-logo.png",
			SiteTitle:   "VSmenu Docs",
			CleanURLs:   true,
			LastUpdated: true,
			LastUpdatedFormat: &nav.DateFormat{
				DateStyle: "short",
				TimeStyle: "short",
			},
			SocialLinks: []nav.SocialLink{
				{Icon: "github", Link: "https://github.com/vsmenu"},
			},
			EditLink: &nav.EditLink{
				Pattern: "https://github.com/vsmenu/vsmenu-docs/edit/main/docs/:path",
				Text:    "Editar esta página no GitHub",
			},
			Footer: &nav.Footer{
				Message:   "Documentação do VSmenu 2.0",
				Copyright: "Copyright © 2024 VSmenu",
			},
		},
		Nav: []*nav.Item{
			link("Home", "/"),
			link("Getting Started", "/getting-started/"),
			link("Arquitetura", "/architecture/"),
			link("API", "/api/"),
			{Text: "Guias", Link: "/guides/", ActiveMatch: "/guides/"},
			{Text: "Mais", Children: []*nav.Item{
				link("Tutoriais", "/tutorials/"),
				link("Regras de Negócio", "/business-rules/"),
				link("Testes", "/testing/"),
				link("Deploy", "/deployment/"),
				link("Contribuir", "/contributing/"),
				link("Changelog", "/changelog/"),
			}},
		},
		Sidebar: nav.SidebarMap{
			"/getting-started/": {
				{Text: "🚀 Getting Started", Items: []*nav.Item{
					link("Overview", "/getting-started/"),
					link("Instalação", "/getting-started/installation"),
					link("Quick Start", "/getting-started/quick-start"),
					link("Pré-requisitos", "/getting-started/prerequisites"),
				}},
			},
			"/architecture/": {
				{Text: "🏗️ Arquitetura", Items: []*nav.Item{
					link("Overview", "/architecture/"),
					link("Visão Geral", "/architecture/overview"),
					link("Componentes", "/architecture/components"),
					link("Fluxo de Dados", "/architecture/data-flow"),
				}},
				{Text: "📋 ADRs", Collapsed: closed(), Items: []*nav.Item{
					link("Architecture Decisions", "/architecture/decisions/"),
				}},
				{Text: "📊 Diagramas", Collapsed: closed(), Items: []*nav.Item{
					link("Diagramas", "/architecture/diagrams/"),
				}},
			},
			"/api/": {
				{Text: "🔌 API", Items: []*nav.Item{
					link("Overview", "/api/"),
					link("Autenticação", "/api/authentication"),
					link("Webhooks", "/api/webhooks"),
					link("WebSockets", "/api/websockets"),
				}},
				{Text: "📍 Endpoints", Collapsed: open(), Items: []*nav.Item{
					link("Endpoints por Módulo", "/api/endpoints/"),
				}},
			},
			"/guides/": {
				{Text: "📚 Guias", Items: []*nav.Item{
					link("Overview", "/guides/"),
				}},
				{Text: "🔧 Backend", Collapsed: open(), Items: []*nav.Item{
					link("vsmenu-api", "/guides/api/"),
				}},
				{Text: "🌐 Frontend", Collapsed: open(), Items: []*nav.Item{
					link("vsmenu-delivery-web", "/guides/web/"),
				}},
				{Text: "💻 Desktop", Collapsed: open(), Items: []*nav.Item{
					link("vsmenu-desktop", "/guides/desktop/"),
				}},
				{Text: "📱 Mobile", Collapsed: open(), Items: []*nav.Item{
					link("Mobile Garçom", "/guides/mobile-waiter/"),
					link("Mobile Entregador", "/guides/mobile-deliverer/"),
				}},
				{Text: "🎨 Design", Collapsed: open(), Items: []*nav.Item{
					link("Design System", "/guides/design-system/"),
				}},
			},
			"/tutorials/": {
				{Text: "🎯 Tutoriais", Items: []*nav.Item{
					link("Overview", "/tutorials/"),
				}},
				{Text: "📗 Iniciante", Collapsed: open(), Items: []*nav.Item{
					link("Tutoriais Iniciantes", "/tutorials/beginner/"),
				}},
				{Text: "📘 Intermediário", Collapsed: open(), Items: []*nav.Item{
					link("Tutoriais Intermediários", "/tutorials/intermediate/"),
				}},
				{Text: "📕 Avançado", Collapsed: open(), Items: []*nav.Item{
					link("Tutoriais Avançados", "/tutorials/advanced/"),
				}},
			},
			"/business-rules/": {
				{Text: "📋 Regras de Negócio", Items: []*nav.Item{
					link("Overview", "/business-rules/"),
					link("Produtos", "/business-rules/products"),
					link("Pedidos", "/business-rules/orders"),
					link("Mesas", "/business-rules/tables"),
					link("Delivery", "/business-rules/delivery"),
					link("Clientes", "/business-rules/customers"),
					link("Pagamentos", "/business-rules/payments"),
					link("Estoque", "/business-rules/inventory"),
				}},
			},
			"/testing/": {
				{Text: "🧪 Testes", Items: []*nav.Item{
					link("Overview", "/testing/"),
					link("Testes Unitários", "/testing/unit-tests"),
					link("Testes de Integração", "/testing/integration-tests"),
					link("Testes E2E", "/testing/e2e-tests"),
				}},
			},
			"/deployment/": {
				{Text: "🚀 Deploy", Items: []*nav.Item{
					link("Overview", "/deployment/"),
					link("Ambiente Local", "/deployment/local"),
					link("Ambiente Staging", "/deployment/staging"),
					link("Ambiente Produção", "/deployment/production"),
				}},
			},
			"/contributing/": {
				{Text: "🤝 Contribuindo", Items: []*nav.Item{
					link("Guia de Contribuição", "/contributing/"),
					link("Estilo de Código", "/contributing/code-style"),
					link("Git Workflow", "/contributing/git-workflow"),
					link("Pull Requests", "/contributing/pull-requests"),
				}},
			},
			"/changelog/": {
				{Text: "📝 Changelog", Items: []*nav.Item{
					link("Histórico de Mudanças", "/changelog/"),
				}},
			},
		},
		Labels: nav.Labels{
			nav.LabelSearchButtonText:       "Buscar",
			nav.LabelSearchButtonAriaLabel:  "Buscar documentação",
			nav.LabelSearchNoResultsText:    "Nenhum resultado encontrado",
			nav.LabelSearchResetButtonTitle: "Limpar busca",
			nav.LabelSearchFooterSelectText: "selecionar",
			nav.LabelSearchFooterNavigate:   "navegar",
			nav.LabelSearchFooterCloseText:  "fechar",
			nav.LabelOutline:                "Nesta página",
			nav.LabelDocFooterPrev:          "Página anterior",
			nav.LabelDocFooterNext:          "Próxima página",
			nav.LabelLastUpdated:            "Atualizado em",
			nav.LabelSidebarMenu:            "Menu",
			nav.LabelReturnToTop:            "Voltar ao topo",
			nav.LabelDarkModeSwitch:         "Aparência",
			nav.LabelLightModeSwitchTitle:   "Trocar para modo claro",
			nav.LabelDarkModeSwitchTitle:    "Trocar para modo escuro",
		},
		Search:  nav.Search{Provider: nav.SearchLocal},
		Outline: nav.Outline{Level: []int{2, 3}},
		Markdown: nav.Markdown{
			LineNumbers: true,
			Theme:       nav.CodeTheme{Light: "github-light", Dark: "github-dark"},
		},
	}
}

// Store builds the portal configuration. The literal is covered by tests, so a failure
// here is a programming error.
func Store() *nav.Store { return nav.MustBuild(Spec()) }
