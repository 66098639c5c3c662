package frameworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/gatehound/internal/model"
)

const springController = `package com.example.tickets;

import org.springframework.web.bind.annotation.*;

@RestController
@RequestMapping("/api/tickets")
@PreAuthorize("hasRole('USER')")
public class TicketController {

    @GetMapping("/open")
    public List<Ticket> open() {
        return service.open();
    }

    @PostMapping
    @PreAuthorize("hasRole('ADMIN')")
    public Ticket create(@RequestBody Ticket ticket) {
        return service.create(ticket);
    }

    @GetMapping("/stats")
    @PreAuthorize("permitAll()")
    public Stats stats() {
        return service.stats();
    }
}
`

func TestSpringExtract(t *testing.T) {
	adapter := newSpringAdapter()
	file := m.SourceFile{Path: "TicketController.java", Content: []byte(springController)}

	require.True(t, adapter.Match(file))

	ext, diags := adapter.Extract(file)

	assert.Empty(t, diags)

	require.Len(t, ext.Scopes, 1)
	class := ext.Scopes[0]
	assert.Equal(t, "/api/tickets", class.MountPrefix)
	assert.Equal(t, "TicketController", class.Name)
	assert.Equal(t, []string{`PreAuthorize("hasRole('USER')")`}, class.InheritedGuards)

	require.Len(t, ext.Candidates, 3)

	open := ext.Candidates[0]
	assert.Equal(t, "/open", open.PathPattern)
	assert.Equal(t, []string{"GET"}, open.Methods)
	assert.Equal(t, "open", open.HandlerRef)
	assert.Empty(t, open.DeclaredGuards)
	assert.Equal(t, class.ID, open.ScopeID)

	create := ext.Candidates[1]
	assert.Empty(t, create.PathPattern)
	assert.Equal(t, []string{"POST"}, create.Methods)
	assert.Equal(t, []string{`PreAuthorize("hasRole('ADMIN')")`}, create.DeclaredGuards)

	stats := ext.Candidates[2]
	assert.Equal(t, "/stats", stats.PathPattern)
	assert.Equal(t, []string{`PreAuthorize("permitAll()")`}, stats.DeclaredGuards)
}

func TestSpringRequestMappingMethodAttr(t *testing.T) {
	content := []byte(`@RestController
public class LegacyController {

    @RequestMapping(value = "/legacy", method = RequestMethod.POST)
    public String legacy() {
        return "ok";
    }
}
`)

	adapter := newSpringAdapter()
	ext, _ := adapter.Extract(m.SourceFile{Path: "LegacyController.java", Content: content})

	require.Len(t, ext.Candidates, 1)
	assert.Equal(t, "/legacy", ext.Candidates[0].PathPattern)
	assert.Equal(t, []string{"POST"}, ext.Candidates[0].Methods)
}

func TestSpringUnroutedClassContributesNoScope(t *testing.T) {
	content := []byte(`@Service
public class TicketService {

    @GetMapping("/oops")
    public String oops() {
        return "not really a controller";
    }
}
`)

	adapter := newSpringAdapter()
	ext, _ := adapter.Extract(m.SourceFile{Path: "TicketService.java", Content: content})

	assert.Empty(t, ext.Scopes)
	require.Len(t, ext.Candidates, 1)
	assert.Empty(t, ext.Candidates[0].ScopeID)
}
