package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Smart Timetable API",
        "description": "Personal timetable and study planner",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Courses and grid notes"},
        {"name": "Holidays", "description": "Weeks with no sessions"},
        {"name": "Attendance", "description": "Session marks and rates"},
        {"name": "Dashboard", "description": "Week and semester statistics"},
        {"name": "Calendar", "description": "Week and date resolution"},
        {"name": "Planner", "description": "Assignments, exams, notes"},
        {"name": "Settings", "description": "Semester anchor"},
        {"name": "Transfer", "description": "Whole-document import/export"},
        {"name": "Exports", "description": "CSV and PDF rendering"}
    ],
    "paths": {
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses and notes",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create or update a course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Schedule conflict"}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get one course",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete a course",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/courses/{id}/favorite": {
            "put": {
                "tags": ["Courses"],
                "summary": "Set the favourite flag",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"favorite": {"type": "boolean"}}}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/holidays": {
            "get": {
                "tags": ["Holidays"],
                "summary": "List holidays",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Holidays"],
                "summary": "Add a holiday by weeks or date range",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Out of semester"}}
            }
        },
        "/holidays/{index}": {
            "delete": {
                "tags": ["Holidays"],
                "summary": "Delete the holiday at a list position",
                "parameters": [{"name": "index", "in": "path", "type": "integer", "required": true}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Raw attendance log",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/attendance/toggle": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Mark or un-mark a session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/attendance/stats": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Attendance totals across all courses",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/attendance/courses/{id}": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Attendance totals for one course",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/attendance/courses/{id}/sessions": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Past sessions with their marks",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard/week": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Week statistics",
                "parameters": [{"name": "week", "in": "query", "type": "integer"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard/semester": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Semester statistics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/calendar/weeks/{week}": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Dates of an absolute week",
                "parameters": [{"name": "week", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/calendar/current": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Today's position in the semester",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/calendar/parse-weeks": {
            "post": {
                "tags": ["Calendar"],
                "summary": "Preview a week range expression",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/calendar/periods": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Period start time table",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/assignments": {
            "get": {"tags": ["Planner"], "summary": "List assignments", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Planner"], "summary": "Create or update an assignment", "responses": {"201": {"description": "Created"}}}
        },
        "/exams": {
            "get": {"tags": ["Planner"], "summary": "List exams", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Planner"], "summary": "Create or update an exam", "responses": {"201": {"description": "Created"}}}
        },
        "/notes": {
            "get": {"tags": ["Planner"], "summary": "List smart notes", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Planner"], "summary": "Create or update a note", "responses": {"201": {"description": "Created"}}}
        },
        "/settings": {
            "get": {"tags": ["Settings"], "summary": "Current semester settings", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["Settings"], "summary": "Partially update the settings", "responses": {"200": {"description": "OK"}}}
        },
        "/transfer/export": {
            "get": {"tags": ["Transfer"], "summary": "Export the full planner document", "responses": {"200": {"description": "OK"}}}
        },
        "/transfer/import": {
            "post": {"tags": ["Transfer"], "summary": "Import a planner document or legacy course array", "responses": {"200": {"description": "OK"}, "400": {"description": "Unsupported format"}}}
        },
        "/exports/timetable": {
            "post": {
                "tags": ["Exports"],
                "summary": "Render one week's timetable",
                "parameters": [
                    {"name": "week", "in": "query", "type": "integer", "required": true},
                    {"name": "format", "in": "query", "type": "string"}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/exports/attendance": {
            "post": {
                "tags": ["Exports"],
                "summary": "Render the attendance report",
                "parameters": [{"name": "format", "in": "query", "type": "string"}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/exports/files/{name}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a rendered export file",
                "parameters": [{"name": "name", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        }
    },
    "definitions": {
        "SaveCourseRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "day": {"type": "integer", "description": "0 note, 2-7 Mon-Sat, 8 Sun"},
                "room": {"type": "string"},
                "teacher": {"type": "string"},
                "startPeriod": {"type": "integer"},
                "periodCount": {"type": "integer"},
                "weeks": {"type": "array", "items": {"type": "integer"}},
                "weekString": {"type": "string"},
                "color": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
