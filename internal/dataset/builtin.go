package dataset

import "github.com/jamesindeed/ai-vibexml-eval/internal/domain"

// Builtin returns the curated evaluation suite. The cases are weighted
// toward scenarios where hierarchical organization should matter, balanced
// by neutral, computational, creative, and adversarial controls, so a run
// measures advantage rather than assuming it.
func Builtin() []domain.TestCase {
	return []domain.TestCase{
		nestedConditionalLogic(),
		workflowDependencies(),
		configurationParsing(),
		basicFactualQuestion(),
		weatherReport(),
		simpleCalculation(),
		creativeStoryWriting(),
		poemComposition(),
		conversationalAdvice(),
		streamOfConsciousness(),
	}
}

func nestedConditionalLogic() domain.TestCase {
	return domain.TestCase{
		Name:        "nested_conditional_logic",
		Description: "Complex deployment decision tree with nested conditions and approval matrices",
		Data: map[string]any{
			"deployment_request": map[string]any{
				"application":      "payment-service",
				"version":          "v2.1.0",
				"environment":      "production",
				"rollback_version": "v2.0.3",
			},
			"conditions": map[string]any{
				"safety_checks": map[string]any{
					"database_migration": map[string]any{
						"required":             true,
						"backwards_compatible": false,
						"estimated_downtime":   "15 minutes",
					},
					"traffic_requirements": map[string]any{
						"peak_hours":        "9am-5pm EST",
						"max_error_rate":    "0.1%",
						"canary_percentage": 5,
					},
				},
				"approval_matrix": map[string]any{
					"database_changes":   []any{"dba-team", "tech-lead"},
					"production_deploy":  []any{"engineering-manager"},
					"emergency_rollback": []any{"on-call-engineer"},
				},
			},
			"current_status": map[string]any{
				"time":               "2:30 PM EST",
				"error_rate":         "0.05%",
				"database_locked":    false,
				"approvals_received": []any{"dba-team", "tech-lead"},
			},
		},
		Task:              "Analyze the deployment request and determine the exact sequence of actions needed, including who needs to approve each step and what conditions must be met.",
		Category:          domain.CategoryStructuredAdvantage,
		WhyStructureHelps: "Nested conditions, approval dependencies, and multi-level decision logic are clearer when hierarchically organized",
		ExpectedAdvantages: []string{
			"Correctly identify all required approvals",
			"Sequence actions based on dependencies",
			"Reference specific safety thresholds",
			"Handle nested conditional logic accurately",
		},
	}
}

func workflowDependencies() domain.TestCase {
	return domain.TestCase{
		Name:        "workflow_dependencies",
		Description: "CI/CD pipeline with conditional steps and complex dependency chains",
		Data: map[string]any{
			"pipeline": "frontend-build",
			"trigger": map[string]any{
				"type":          "pull_request",
				"branch":        "feature/checkout-redesign",
				"files_changed": []any{"src/checkout/", "tests/checkout/", "api/payment.ts"},
			},
			"stages": map[string]any{
				"validate": map[string]any{
					"depends_on": []any{},
					"parallel":   true,
					"steps": []any{
						map[string]any{"name": "lint", "timeout": 5, "required": true},
						map[string]any{"name": "type-check", "timeout": 3, "required": true},
						map[string]any{"name": "security-scan", "timeout": 10, "required": false},
					},
				},
				"test": map[string]any{
					"depends_on":  []any{"validate"},
					"parallel":    false,
					"conditional": "if files_changed includes src/ or tests/",
					"steps": []any{
						map[string]any{"name": "unit-tests", "timeout": 15, "required": true},
						map[string]any{"name": "integration-tests", "timeout": 20, "required": true, "condition": "if api/ files changed"},
						map[string]any{"name": "e2e-tests", "timeout": 30, "required": false, "condition": "if checkout/ files changed"},
					},
				},
				"build": map[string]any{
					"depends_on": []any{"test"},
					"parallel":   false,
					"steps": []any{
						map[string]any{"name": "compile", "timeout": 10, "required": true},
						map[string]any{"name": "bundle", "timeout": 5, "required": true},
						map[string]any{"name": "optimize", "timeout": 8, "required": false},
					},
				},
			},
			"environment": map[string]any{
				"node_version":      "18.x",
				"cache_enabled":     true,
				"max_parallel_jobs": 3,
			},
		},
		Task:              "Generate the exact execution plan for this pipeline, including which steps run in parallel, conditional execution logic, and total estimated timeline.",
		Category:          domain.CategoryStructuredAdvantage,
		WhyStructureHelps: "Complex dependencies and conditional logic require understanding hierarchical relationships that are clearer in structured format",
		ExpectedAdvantages: []string{
			"Correctly identify parallel vs sequential execution",
			"Apply conditional logic based on file changes",
			"Calculate realistic timeline with dependencies",
			"Reference specific timeout values and conditions",
		},
	}
}

func configurationParsing() domain.TestCase {
	return domain.TestCase{
		Name:        "configuration_parsing",
		Description: "Kubernetes deployment configuration with multiple interdependent settings and reported issues",
		Data: map[string]any{
			"deployment": map[string]any{
				"metadata": map[string]any{"name": "web-app", "namespace": "production"},
				"spec": map[string]any{
					"replicas": 3,
					"strategy": map[string]any{
						"type": "RollingUpdate",
						"rollingUpdate": map[string]any{
							"maxUnavailable": "25%",
							"maxSurge":       "25%",
						},
					},
					"template": map[string]any{
						"spec": map[string]any{
							"containers": []any{
								map[string]any{
									"name":  "app",
									"image": "myapp:v2.1.0",
									"ports": []any{map[string]any{"containerPort": 8080}},
									"env": []any{
										map[string]any{
											"name": "DATABASE_URL",
											"valueFrom": map[string]any{
												"secretKeyRef": map[string]any{"name": "db-secret", "key": "url"},
											},
										},
										map[string]any{"name": "REDIS_URL", "value": "redis://redis-service:6379"},
										map[string]any{"name": "LOG_LEVEL", "value": "info"},
									},
									"resources": map[string]any{
										"requests": map[string]any{"cpu": "100m", "memory": "256Mi"},
										"limits":   map[string]any{"cpu": "500m", "memory": "512Mi"},
									},
									"livenessProbe": map[string]any{
										"httpGet":             map[string]any{"path": "/health", "port": 8080},
										"initialDelaySeconds": 30,
										"periodSeconds":       10,
									},
								},
							},
						},
					},
				},
			},
			"issues_reported": []any{
				"Pods failing to start during deployment",
				"Memory usage spiking during rolling updates",
				"Health checks timing out intermittently",
			},
		},
		Task:              "Analyze this Kubernetes configuration and identify specific issues that could cause the reported problems. Provide exact configuration changes needed to resolve them.",
		Category:          domain.CategoryStructuredAdvantage,
		WhyStructureHelps: "Complex nested configuration requires understanding relationships between resources, probes, and deployment strategies",
		ExpectedAdvantages: []string{
			"Identify specific configuration conflicts and paths",
			"Reference exact parameter values in nested structures",
			"Understand relationships between resource limits and health checks",
			"Provide precise configuration fixes with proper nesting",
		},
	}
}

func basicFactualQuestion() domain.TestCase {
	return domain.TestCase{
		Name:        "basic_factual_question",
		Description: "Simple factual question about historical events",
		Data: map[string]any{
			"question": "When did World War II end?",
			"context": map[string]any{
				"subject":    "history",
				"difficulty": "basic",
				"type":       "factual",
			},
		},
		Task:              "Answer the factual question accurately and concisely.",
		Category:          domain.CategoryNeutral,
		WhyStructureHelps: "Structure provides no advantage for simple factual recall - both formats contain identical information",
		ExpectedAdvantages: []string{
			"No expected advantages - this tests baseline performance",
			"Structure should not improve accuracy for simple facts",
			"Both formats should perform equally well",
		},
	}
}

func weatherReport() domain.TestCase {
	return domain.TestCase{
		Name:        "weather_report",
		Description: "Basic weather data interpretation",
		Data: map[string]any{
			"temperature": "72F",
			"humidity":    "65%",
			"wind":        "8 mph NW",
			"conditions":  "partly cloudy",
		},
		Task:              "Describe today's weather conditions in a single sentence.",
		Category:          domain.CategoryNeutral,
		WhyStructureHelps: "Simple weather data is equally accessible in both formats - no complex relationships to parse",
		ExpectedAdvantages: []string{
			"No structural advantage for simple data interpretation",
			"Both formats contain the same information clearly",
			"Response quality should be equivalent",
		},
	}
}

func simpleCalculation() domain.TestCase {
	return domain.TestCase{
		Name:        "simple_calculation",
		Description: "Straightforward mathematical calculation",
		Data: map[string]any{
			"numbers":   []any{15, 23, 8, 42},
			"operation": "addition",
			"context":   "Calculate the sum",
		},
		Task:              "Calculate the sum of the given numbers: 15 + 23 + 8 + 42",
		Category:          domain.CategoryComputational,
		WhyStructureHelps: "Mathematical calculations don't benefit from structural formatting - the computation is the same regardless",
		ExpectedAdvantages: []string{
			"No structural advantage expected",
			"Both formats should yield identical results",
			"Computation accuracy should be format-independent",
		},
	}
}

func creativeStoryWriting() domain.TestCase {
	return domain.TestCase{
		Name:        "creative_story_writing",
		Description: "Creative writing with character and setting prompts",
		Data: map[string]any{
			"character": map[string]any{
				"name":       "Elena",
				"age":        28,
				"occupation": "marine biologist",
			},
			"setting": map[string]any{
				"location": "remote island research station",
				"time":     "during a storm",
				"mood":     "mysterious",
			},
			"genre": "thriller",
		},
		Task:              "Write a compelling 200-word story opening featuring Elena at the research station during the storm.",
		Category:          domain.CategoryCreative,
		WhyStructureHelps: "Structure may actually constrain creative flow by breaking narrative elements into rigid categories",
		ExpectedAdvantages: []string{
			"Raw text may flow more naturally for creative writing",
			"Structured format might feel restrictive for storytelling",
			"Creative tasks often benefit from organic information presentation",
		},
	}
}

func poemComposition() domain.TestCase {
	return domain.TestCase{
		Name:        "poem_composition",
		Description: "Write a poem based on given themes and constraints",
		Data: map[string]any{
			"theme":   "autumn leaves",
			"style":   "free verse",
			"mood":    "contemplative",
			"length":  "8-12 lines",
			"imagery": []any{"golden", "falling", "whisper"},
		},
		Task:              "Compose a contemplative free verse poem about autumn leaves using the suggested imagery.",
		Category:          domain.CategoryCreative,
		WhyStructureHelps: "Poetic composition benefits from natural language flow rather than structured data presentation",
		ExpectedAdvantages: []string{
			"Raw text may inspire more natural creative expression",
			"Structured format may feel mechanical for artistic tasks",
			"Poetry often emerges from organic word associations",
		},
	}
}

func conversationalAdvice() domain.TestCase {
	return domain.TestCase{
		Name:        "conversational_advice",
		Description: "Provide empathetic advice for a personal situation",
		Data: map[string]any{
			"situation": "I'm feeling overwhelmed balancing work and personal life",
			"context": map[string]any{
				"person":            "working professional",
				"age_range":         "late 20s",
				"specific_concerns": []any{"long work hours", "neglecting relationships", "stress"},
			},
			"tone_desired": "supportive and understanding",
		},
		Task:              "Provide compassionate, practical advice for managing work-life balance and stress.",
		Category:          domain.CategoryAdversarial,
		WhyStructureHelps: "Conversational advice benefits from natural, flowing language rather than structured presentation - empathy requires organic expression",
		ExpectedAdvantages: []string{
			"Raw text may sound more natural and empathetic",
			"Structured format may feel clinical for personal advice",
			"Human connection often requires informal, flowing communication",
		},
	}
}

func streamOfConsciousness() domain.TestCase {
	return domain.TestCase{
		Name:        "stream_of_consciousness",
		Description: "Express thoughts and feelings about a memory",
		Data: map[string]any{
			"memory_trigger": "the smell of fresh bread",
			"associations":   []any{"childhood", "grandmother's kitchen", "warmth", "comfort"},
			"emotion":        "nostalgia",
			"style":          "stream of consciousness",
		},
		Task:              "Write a stream-of-consciousness reflection triggered by the smell of fresh bread, incorporating childhood memories.",
		Category:          domain.CategoryAdversarial,
		WhyStructureHelps: "Stream of consciousness requires natural thought flow that structured formatting artificially fragments",
		ExpectedAdvantages: []string{
			"Raw text allows for natural thought progression",
			"Structured format disrupts the organic flow of consciousness",
			"Authentic emotional expression benefits from unstructured presentation",
		},
	}
}
