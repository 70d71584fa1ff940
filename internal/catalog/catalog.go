// Recommend Service - Semantic Matching and Product Recommendation Engine
// Copyright 2026 hoang3ber123
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/hoang3ber123/recommend-service

// Package catalog holds the category catalog used for semantic matching.
// A built-in catalog ships with the service; deployments can replace it
// with a YAML file via scoring.catalog_path.
package catalog

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Category is a recommendable grouping with descriptive text used for
// embedding. Description is a keyword-dense summary of what the
// category covers; matching embeds "title description" as one text.
type Category struct {
	ID          string `koanf:"id" json:"id"`
	Title       string `koanf:"title" json:"title"`
	Description string `koanf:"description" json:"description"`
}

// Text returns the category's combined text used for embedding.
func (c Category) Text() string {
	return c.Title + " " + c.Description
}

// Default returns a copy of the built-in category catalog. Callers may
// modify the returned slice freely.
func Default() []Category {
	out := make([]Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// Load reads a category catalog from a YAML file of the form:
//
//	categories:
//	  - id: "1"
//	    title: backend
//	    description: Server-side, APIs, ...
//
// Entries missing an ID or title are rejected.
func Load(path string) ([]Category, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse %s: %w", path, err)
	}

	var categories []Category
	if err := k.Unmarshal("categories", &categories); err != nil {
		return nil, fmt.Errorf("catalog: failed to unmarshal %s: %w", path, err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("catalog: %s contains no categories", path)
	}
	for i, c := range categories {
		if c.ID == "" || c.Title == "" {
			return nil, fmt.Errorf("catalog: entry %d missing id or title", i)
		}
	}
	return categories, nil
}

// defaultCategories is the built-in catalog. Descriptions are keyword
// dense on purpose: they anchor the embedding of each category so short
// queries land near the right neighborhood.
var defaultCategories = []Category{
	{
		ID:          "1",
		Title:       "backend",
		Description: "Server-side, APIs, databases, RESTful, GraphQL, authentication, authorization, MVC, ORM, backend development, middleware, caching, scalability, backend architecture, load balancing, API gateway",
	},
	{
		ID:          "3",
		Title:       "nodejs",
		Description: "JavaScript runtime, scalable backend, Express.js, NestJS, event-driven, asynchronous programming, non-blocking I/O, V8 engine, serverless, WebSockets, microservices, API development, package management (npm, yarn)",
	},
	{
		ID:          "5",
		Title:       "microservices",
		Description: "Distributed services, architecture, containerization, Kubernetes, Docker, service discovery, API gateway, inter-service communication, CQRS, event sourcing, decentralized architecture, domain-driven design (DDD), fault tolerance",
	},
	{
		ID:          "6",
		Title:       "performance optimization",
		Description: "Speed, latency, efficiency, caching strategies, database indexing, load balancing, CDN, query optimization, profiling, memory management, parallel processing, multithreading, performance monitoring, response time, request throttling",
	},
	{
		ID:          "7",
		Title:       "budget-friendly",
		Description: "Low cost, affordable solutions, cost optimization, open-source tools, free-tier services, cloud cost management, pricing models, SaaS alternatives, resource efficiency, cost-effective hosting, serverless pricing, FinOps",
	},
	{
		ID:          "2",
		Title:       "frontend",
		Description: "UI, client-side, responsive design, HTML, CSS, JavaScript, TypeScript, CSS frameworks (Bootstrap, Tailwind, Material UI), UI components, animations, DOM manipulation, progressive web apps (PWA), single-page applications (SPA), WebAssembly, frontend optimization",
	},
	{
		ID:          "4",
		Title:       "react",
		Description: "Interactive UI, JavaScript library, React.js, React Native, JSX, virtual DOM, component-based architecture, hooks, state management (Redux, Recoil, Zustand), SSR (Next.js), hydration, reconciliation, frontend framework",
	},
	{
		ID:          "8",
		Title:       "ai",
		Description: "Artificial intelligence, machine learning, deep learning, neural networks, NLP, computer vision, reinforcement learning, generative AI, transformer models, large language models (LLM), AI ethics, data science, predictive analytics, AI-driven automation",
	},
	{
		ID:          "9",
		Title:       "ecommerce",
		Description: "Online stores, shopping, transactions, payment gateways (Stripe, PayPal, VNPay), shopping cart, checkout flow, order management, product catalog, customer reviews, dropshipping, marketplace, subscription model, SEO for ecommerce, user experience (UX), conversion rate optimization (CRO)",
	},
	{
		ID:          "10",
		Title:       "saas",
		Description: "Software as a Service, cloud solutions, multi-tenant architecture, subscription-based, SaaS pricing models, API-first development, microservices for SaaS, customer onboarding, usage analytics, scalability, CI/CD, DevOps, cloud hosting (AWS, Azure, GCP), security compliance (SOC 2, GDPR)",
	},
	{
		ID:          "11",
		Title:       "portfolio",
		Description: "Showcase projects, personal branding, web portfolio, design portfolio, developer portfolio, case studies, UI/UX presentation, interactive resume, testimonials, online presence, custom domain, SEO optimization, responsive design",
	},
	{
		ID:          "12",
		Title:       "blog",
		Description: "Content writing, publishing, news, CMS (WordPress, Ghost, Strapi), Markdown, SEO, social media integration, email newsletters, blog monetization, affiliate marketing, audience engagement, blog analytics, content strategy, editorial workflow",
	},
	{
		ID:          "13",
		Title:       "landing-page",
		Description: "Marketing, conversions, lead generation, sales funnel, call-to-action (CTA), A/B testing, copywriting, UI/UX design, high-converting pages, one-page websites, performance tracking, Google Ads, Facebook Pixel, SEO optimization",
	},
	{
		ID:          "14",
		Title:       "news",
		Description: "Media, articles, latest updates, journalism, online magazines, breaking news, press releases, RSS feeds, news aggregation, real-time updates, media coverage, social media trends, digital publishing, fact-checking",
	},
	{
		ID:          "15",
		Title:       "real-estate",
		Description: "Property listings, real estate solutions, rental properties, commercial real estate, mortgage calculators, house valuation, property management, real estate CRM, MLS (Multiple Listing Service), home-buying process, real estate investments, virtual tours",
	},
	{
		ID:          "16",
		Title:       "web3",
		Description: "Decentralized applications, blockchain, smart contracts, Ethereum, NFTs, DeFi (Decentralized Finance), DAOs (Decentralized Autonomous Organizations), tokenomics, crypto wallets, metaverse, on-chain governance, Web3 authentication, Layer 2 scaling solutions",
	},
	{
		ID:          "17",
		Title:       "startup",
		Description: "Entrepreneurship, business growth, startup funding, venture capital, bootstrapping, business model canvas, go-to-market strategy, pitch decks, MVP (Minimum Viable Product), customer acquisition, product-market fit, accelerator programs, startup scaling",
	},
	{
		ID:          "18",
		Title:       "tech",
		Description: "Technology, innovations, IT, artificial intelligence, cloud computing, cybersecurity, data science, IoT (Internet of Things), big data, quantum computing, 5G networks, emerging technologies, IT infrastructure, digital transformation",
	},
	{
		ID:          "19",
		Title:       "modern",
		Description: "Contemporary design, latest trends, minimalism, futuristic UI, neomorphic design, glassmorphism, dark mode, responsive layouts, creative direction, user-centric design, modern typography, digital aesthetics, web trends",
	},
	{
		ID:          "20",
		Title:       "animated",
		Description: "Motion graphics, interactive UI, CSS animations, Lottie animations, SVG animations, microinteractions, transitions, parallax effects, 3D animations, WebGL, After Effects, real-time rendering, immersive user experience",
	},
}
